// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/input"
	"cosmic-drifter/internal/ui"
)

var _ State = (*GameState)(nil)

// GameState — экран забега: диалоги, игра, конец игры и финал сюжета.
// Пауза вынесена в PauseState.
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {
	g.session.syncPoller()
}

func (g *GameState) Update(deltaTime float64) {
	f := readInput()
	if f.Mute {
		g.session.toggleMute()
	}
	input.Apply(g.session.Game, f)
	g.session.Game.Update(deltaTime)
	g.session.syncPoller()

	switch g.session.Game.Phase() {
	case component.PhasePaused:
		g.sm.SetState(NewPauseState(g.sm, g.session, g))
	case component.PhaseMenu:
		g.sm.SetState(NewMenuState(g.sm, g.session))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.session.Game
	g.session.drawWorld(screen)

	switch game.Phase() {
	case component.PhaseLevelTransition:
		title, line := game.Dialogue()
		ui.DrawDialogue(screen, title, line)
	case component.PhaseStoryEnd:
		ui.DrawStoryEnd(screen, game.Score())
	case component.PhaseGameOver:
		g.session.HUD.Draw(screen, game)
		ui.DrawGameOver(screen, game.Score())
	default:
		g.session.HUD.Draw(screen, game)
	}
}

// Exit не трогает советника: пауза тоже уходит через SetState.
func (g *GameState) Exit() {}
