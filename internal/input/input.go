// Package input turns a per-frame snapshot of keys and pointer into movement
// intent and run commands. Reading the devices lives in internal/state.
package input

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/interfaces"
)

// Frame — что нажато в этом кадре. Up..Right и Pointer удерживаются,
// остальные поля срабатывают только в кадр нажатия.
type Frame struct {
	Up, Down, Left, Right bool
	Pointer               bool
	PointerX, PointerY    float64

	Confirm  bool // Enter / Space
	Pause    bool // P / Esc
	Restart  bool // R
	Mute     bool // M
	PrevMode bool
	NextMode bool
}

// Run — забег, которым управляет ввод
type Run interface {
	interfaces.Controls
	Phase() component.Phase
	Mode() component.Mode
}

// Intent переводит удерживаемые клавиши и указатель в намерение движения.
func (f Frame) Intent() component.Intent {
	return component.Intent{
		Up:       f.Up,
		Down:     f.Down,
		Left:     f.Left,
		Right:    f.Right,
		Dragging: f.Pointer,
		TargetX:  f.PointerX,
		TargetY:  f.PointerY,
	}
}

// Apply раздаёт команды кадра в зависимости от фазы. Звук не трогает.
func Apply(run Run, f Frame) {
	switch run.Phase() {
	case component.PhaseMenu:
		if f.PrevMode || f.NextMode {
			next := component.ModeEndless
			if run.Mode() == component.ModeEndless {
				next = component.ModeStory
			}
			run.SetMode(next)
		}
		if f.Confirm {
			run.StartGame()
		}
	case component.PhaseLevelTransition, component.PhaseStoryEnd:
		if f.Confirm {
			run.NextDialogue()
		}
	case component.PhasePlaying:
		run.SetIntent(f.Intent())
		if f.Pause {
			run.TogglePause()
		}
	case component.PhasePaused:
		switch {
		case f.Pause:
			run.TogglePause()
		case f.Restart:
			run.Restart()
		}
	case component.PhaseGameOver:
		switch {
		case f.Confirm:
			run.Restart()
			run.StartGame()
		case f.Restart:
			run.Restart()
		}
	}
}
