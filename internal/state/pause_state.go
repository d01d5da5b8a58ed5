// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/input"
	"cosmic-drifter/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженный кадр предыдущего состояния с затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	session       *Session
	previousState State
}

func NewPauseState(sm *StateMachine, session *Session, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		session:       session,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	f := readInput()
	if f.Mute {
		s.session.toggleMute()
	}
	input.Apply(s.session.Game, f)
	s.session.Game.Update(deltaTime)
	s.session.syncPoller()

	switch s.session.Game.Phase() {
	case component.PhasePlaying:
		s.stateMachine.SetState(s.previousState)
	case component.PhaseMenu:
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.session))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	ui.DrawPaused(screen, s.session.muted())
}

func (s *PauseState) Exit() {}
