// internal/state/loading_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cosmic-drifter/internal/ui"
)

var _ State = (*LoadingState)(nil)

// LoadingState ждёт, пока каждый ресурс загрузится или будет помечен недоступным.
type LoadingState struct {
	sm      *StateMachine
	session *Session
}

func NewLoadingState(sm *StateMachine, session *Session) *LoadingState {
	return &LoadingState{sm: sm, session: session}
}

func (s *LoadingState) Enter() {
	s.session.Assets.Load(s.session.Ctx)
}

func (s *LoadingState) Update(deltaTime float64) {
	s.session.Game.Update(deltaTime)
	if s.session.Assets.Done() {
		s.session.Game.FinishLoading()
		s.session.startMusic()
		s.sm.SetState(NewMenuState(s.sm, s.session))
	}
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	settled, total := s.session.Assets.Progress()
	ui.DrawLoading(screen, settled, total)
}

func (s *LoadingState) Exit() {}
