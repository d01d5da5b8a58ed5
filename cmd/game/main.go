// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cosmic-drifter/internal/app"
	"cosmic-drifter/internal/assets"
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/defs"
	"cosmic-drifter/internal/difficulty"
	"cosmic-drifter/internal/sound"
	"cosmic-drifter/internal/state"
	"cosmic-drifter/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	debug          bool // счётчик TPS/FPS в углу
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
	if a.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, config.ScreenHeight-16)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	modeFlag := flag.String("mode", "story", "story or endless")
	advisorURL := flag.String("advisor", "", "difficulty advisor base URL; empty uses the built-in heuristic")
	assetsDir := flag.String("assets", "assets", "directory with sprites and sounds")
	levelsPath := flag.String("levels", "", "story levels YAML replacing the built-in campaign")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	muted := flag.Bool("muted", false, "start with sound off")
	debug := flag.Bool("debug", false, "debug logging and pprof on localhost:6060")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		go func() {
			log.Error().Err(http.ListenAndServe("localhost:6060", nil)).Msg("pprof server stopped")
		}()
	}

	mode, err := component.ParseMode(*modeFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -mode")
	}

	levels := defs.StoryLevels()
	if *levelsPath != "" {
		if levels, err = defs.LoadStoryLevels(*levelsPath); err != nil {
			log.Fatal().Err(err).Msg("cannot load story levels")
		}
	}

	var advisor difficulty.Advisor = difficulty.Heuristic{}
	if *advisorURL != "" {
		advisor = difficulty.NewHTTPAdvisor(*advisorURL, nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := app.NewGame(mode, levels, utils.NewPRNGService(*seed))
	manager := assets.NewManager(os.DirFS(*assetsDir), assets.DefaultResources)
	sounds := sound.NewSoundBoard(audio.NewContext(assets.SampleRate), manager)
	sounds.SetMuted(*muted)

	session := state.NewSession(ctx, game, manager, sounds, advisor)
	defer session.Close()
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewLoadingState(sm, session))

	log.Info().Str("mode", mode.String()).Str("assets", *assetsDir).Int("levels", len(levels)).Msg("starting")

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		debug:          *debug,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cosmic Drifter")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
