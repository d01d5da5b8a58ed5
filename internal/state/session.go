// internal/state/session.go
package state

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"cosmic-drifter/internal/app"
	"cosmic-drifter/internal/assets"
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/difficulty"
	"cosmic-drifter/internal/render"
	"cosmic-drifter/internal/sound"
	"cosmic-drifter/internal/ui"
)

// Session — всё, что живёт дольше одного экрана
type Session struct {
	Ctx     context.Context
	Game    *app.Game
	Assets  *assets.Manager
	Sounds  *sound.SoundBoard // nil — без звука
	Advisor difficulty.Advisor
	Painter *ui.Painter
	HUD     *ui.HUD

	poller *difficulty.Poller // живёт от старта забега до возврата в меню
}

// NewSession связывает игру с ресурсами и звуком.
func NewSession(ctx context.Context, game *app.Game, manager *assets.Manager, sounds *sound.SoundBoard, advisor difficulty.Advisor) *Session {
	if game == nil || manager == nil {
		panic("game and assets cannot be nil")
	}
	if sounds != nil {
		sounds.Attach(game.EventDispatcher)
	}
	return &Session{
		Ctx:     ctx,
		Game:    game,
		Assets:  manager,
		Sounds:  sounds,
		Advisor: advisor,
		Painter: ui.NewPainter(manager),
		HUD:     ui.NewHUD(),
	}
}

// syncPoller держит советника сложности живым, пока идёт бесконечный забег,
// включая паузу и диалоги, и гасит его при возврате в меню.
func (s *Session) syncPoller() {
	phase := s.Game.Phase()
	active := s.Advisor != nil && s.Game.Mode() == component.ModeEndless &&
		phase != component.PhaseMenu && phase != component.PhaseLoading

	switch {
	case active && s.poller == nil:
		s.poller = difficulty.NewPoller(s.Advisor,
			config.AdvisorIntervalSec*time.Second,
			config.AdvisorTimeoutSec*time.Second,
		)
		s.Game.SetFeed(s.poller)
		s.poller.Start(s.Ctx)
		log.Debug().Str("run", s.Game.RunID).Msg("difficulty poller started")
	case !active && s.poller != nil:
		s.Close()
	}
}

// Close останавливает опрос советника, если он идёт.
func (s *Session) Close() {
	if s.poller == nil {
		return
	}
	s.Game.SetFeed(nil)
	s.poller.Stop()
	s.poller = nil
	log.Debug().Msg("difficulty poller stopped")
}

func (s *Session) toggleMute() {
	if s.Sounds == nil {
		return
	}
	muted := s.Sounds.ToggleMute()
	log.Debug().Bool("muted", muted).Msg("sound toggled")
}

func (s *Session) startMusic() {
	if s.Sounds != nil {
		s.Sounds.StartMusic()
	}
}

func (s *Session) muted() bool {
	return s.Sounds == nil || s.Sounds.Muted()
}

// drawWorld рисует поле без панели.
func (s *Session) drawWorld(screen *ebiten.Image) {
	s.Painter.Draw(screen, render.Project(s.Game.ECS, s.Game.GameTime()))
}
