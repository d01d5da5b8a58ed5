// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/input"
	"cosmic-drifter/internal/ui"
)

var _ State = (*MenuState)(nil)

// MenuState — выбор режима и старт забега
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	f := readInput()
	if f.Mute {
		m.session.toggleMute()
	}
	input.Apply(m.session.Game, f)
	m.session.Game.Update(deltaTime)

	if m.session.Game.Phase() != component.PhaseMenu {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.session.drawWorld(screen)
	ui.DrawMenu(screen, m.session.Game.Mode(), m.session.muted())
}

func (m *MenuState) Exit() {}
