// internal/app/level_flow.go
package app

import (
	"github.com/rs/zerolog/log"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/event"
)

// FinishLoading переводит игру из загрузки в меню, когда все ресурсы определились.
func (g *Game) FinishLoading() {
	if g.phase == component.PhaseLoading {
		g.setPhase(component.PhaseMenu)
	}
}

// SetMode выбирает режим. Работает только до старта забега.
func (g *Game) SetMode(mode component.Mode) bool {
	if g.phase != component.PhaseMenu && g.phase != component.PhaseLoading {
		return false
	}
	g.mode = mode
	g.SpawnSystem.SetMode(mode)
	g.wave = g.newWave(1)
	return true
}

// StartGame начинает забег с первого уровня.
func (g *Game) StartGame() {
	if g.phase != component.PhaseMenu {
		return
	}
	g.startLevel(1)
}

func (g *Game) startLevel(level int) {
	g.wave = g.newWave(level)
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: level})
	log.Info().Str("run", g.RunID).Int("level", level).Str("mode", g.mode.String()).Msg("level started")

	if g.mode == component.ModeEndless {
		g.setPhase(component.PhasePlaying)
		return
	}
	tpl, _ := g.levelTemplate(level)
	g.dialogue = tpl.Dialogue
	g.dialogueIndex = 0
	g.setPhase(component.PhaseLevelTransition)
}

// NextDialogue листает реплики перехода; после последней начинается уровень.
// На финальном экране возвращает в меню.
func (g *Game) NextDialogue() {
	switch g.phase {
	case component.PhaseLevelTransition:
		if g.dialogueIndex < len(g.dialogue)-1 {
			g.dialogueIndex++
			return
		}
		g.setPhase(component.PhasePlaying)
	case component.PhaseStoryEnd:
		g.Restart()
	}
}

// TogglePause переключает паузу; вне игры ничего не делает.
func (g *Game) TogglePause() {
	switch g.phase {
	case component.PhasePlaying:
		g.setPhase(component.PhasePaused)
	case component.PhasePaused:
		g.setPhase(component.PhasePlaying)
	}
}

// Restart сбрасывает забег и возвращает в меню.
func (g *Game) Restart() {
	if g.phase == component.PhaseLoading {
		return
	}
	g.resetRun()
	g.setPhase(component.PhaseMenu)
}

// completeLevel закрывает текущий уровень ровно один раз.
func (g *Game) completeLevel() {
	if g.mode != component.ModeStory || g.wave.Completed {
		return
	}
	g.wave.Completed = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: g.wave.Level})
}

// advanceLevel переходит к следующему сюжетному уровню или к финалу.
func (g *Game) advanceLevel() {
	if g.mode != component.ModeStory {
		return
	}
	next := g.wave.Level + 1
	if _, ok := g.levelTemplate(next); ok {
		g.startLevel(next)
		return
	}
	g.setPhase(component.PhaseStoryEnd)
}

// gameOver срабатывает только из игры, поэтому повторная смерть ничего не делает.
func (g *Game) gameOver() {
	if g.phase != component.PhasePlaying {
		return
	}
	g.setPhase(component.PhaseGameOver)
}

func (g *Game) setPhase(phase component.Phase) {
	if g.phase == phase {
		return
	}
	from := g.phase
	g.phase = phase
	log.Debug().Str("from", from.String()).Str("to", phase.String()).Msg("phase changed")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChange{From: from.String(), To: phase.String()},
	})
}
