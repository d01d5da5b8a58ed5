// internal/app/game.go
package app

import (
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/defs"
	"cosmic-drifter/internal/difficulty"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/event"
	"cosmic-drifter/internal/interfaces"
	"cosmic-drifter/internal/system"
	"cosmic-drifter/internal/utils"
)

// DifficultyFeed — источник параметров сложности, работающий вне тика.
// Игра публикует снимок статистики и забирает готовые ответы без ожидания.
type DifficultyFeed interface {
	Publish(difficulty.Snapshot)
	Updates() <-chan difficulty.Params
}

var (
	_ interfaces.Controls   = (*Game)(nil)
	_ interfaces.HUDContext = (*Game)(nil)
)

// Game holds the run state and drives the simulation step.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	PlayerSystem       *system.PlayerSystem
	WeaponSystem       *system.WeaponSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	SpawnSystem        *system.SpawnSystem
	CollisionSystem    *system.CollisionSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem

	RunID string

	mode   component.Mode
	phase  component.Phase
	levels []defs.StoryLevel // шаблоны, не меняются
	wave   *component.Wave
	feed   DifficultyFeed
	intent component.Intent

	dialogue      []string
	dialogueIndex int

	score             int
	curesCollected    int
	enemiesDefeated   int
	powerUpsCollected int
	gameTime          float64
	notice            component.Notification
}

// NewGame initializes a run in the loading phase.
func NewGame(mode component.Mode, levels []defs.StoryLevel, rng *utils.PRNGService) *Game {
	if len(levels) == 0 {
		panic("levels cannot be empty")
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		mode:            mode,
		phase:           component.PhaseLoading,
		levels:          defs.CloneLevels(levels),
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, eventDispatcher, rng)
	g.SpawnSystem.SetMode(mode)
	g.PlayerSystem = system.NewPlayerSystem(ecs)
	g.WeaponSystem = system.NewWeaponSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, g.SpawnSystem)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher, g.SpawnSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, g.SpawnSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, rng)
	g.VisualEffectSystem.SeedStars(config.StarCount)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener,
		event.EnemyDestroyed,
		event.BossSpawned,
		event.PowerUpCollected,
		event.PlayerDied,
		event.LevelCompleted,
	)

	g.resetRun()
	return g
}

// SetFeed подключает советника сложности. nil отключает.
func (g *Game) SetFeed(feed DifficultyFeed) {
	g.feed = feed
}

// SetIntent принимает намерение движения, накопленное вводом между тиками.
func (g *Game) SetIntent(intent component.Intent) {
	g.intent = intent
}

// Update advances the run by one frame.
func (g *Game) Update(deltaTime float64) {
	dt := utils.Clamp(deltaTime, 0, config.MaxDeltaTime)

	g.drainDifficulty()
	if g.notice.TTL > 0 {
		g.notice.TTL -= dt
	}
	// фон летит на любом экране, даже на паузе
	g.VisualEffectSystem.UpdateStars(dt)
	if g.phase == component.PhasePlaying {
		g.step(dt)
	}
	g.publish()
}

func (g *Game) step(dt float64) {
	g.gameTime += dt

	g.PlayerSystem.Update(dt, g.intent)
	g.WeaponSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.VisualEffectSystem.UpdateExplosions(dt)
	g.SpawnSystem.Update(g.wave)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)

	g.CollisionSystem.Update(g.wave)
	// смерть или переход уровня внутри прохода столкновений завершают кадр
	if g.phase == component.PhasePlaying {
		g.WaveSystem.Update(g.wave)
	}

	g.ECS.Compact()
}

// drainDifficulty забирает последний ответ советника одним присваиванием.
func (g *Game) drainDifficulty() {
	if g.feed == nil {
		return
	}
	select {
	case params := <-g.feed.Updates():
		g.SpawnSystem.SetParams(params)
	default:
	}
}

func (g *Game) publish() {
	if g.feed == nil {
		return
	}
	g.feed.Publish(difficulty.Snapshot{
		Request: difficulty.Request{
			PlayerScore:       g.score,
			Level:             g.wave.Level,
			EnemiesDefeated:   g.enemiesDefeated,
			PowerUpsCollected: g.powerUpsCollected,
			GameTime:          g.gameTime,
			RunID:             g.RunID,
		},
		Playing: g.phase == component.PhasePlaying,
	})
}

// resetRun возвращает все коллекции, счёт, уровень и счётчик лекарств к началу.
func (g *Game) resetRun() {
	g.ECS.Clear()
	g.ECS.Player = component.NewPlayer(
		config.ScreenWidth/2,
		config.ScreenHeight-config.PlayerOffsetY,
		config.PlayerRadius,
		config.PlayerSpeed,
		config.PlayerHealth,
	)
	g.RunID = uuid.NewString()
	g.SpawnSystem.SetParams(difficulty.Defaults())
	g.wave = g.newWave(1)
	g.dialogue, g.dialogueIndex = nil, 0
	g.score = 0
	g.curesCollected = 0
	g.enemiesDefeated = 0
	g.powerUpsCollected = 0
	g.gameTime = 0
	g.notice = component.Notification{}
	g.intent = component.Intent{}

	log.Debug().Str("run", g.RunID).Str("mode", g.mode.String()).Msg("run reset")
}

func (g *Game) newWave(level int) *component.Wave {
	wave := &component.Wave{Level: level}
	if g.mode == component.ModeStory {
		if tpl, ok := g.levelTemplate(level); ok {
			wave.EnemiesToSpawn = tpl.EnemyCount
			wave.Boss = tpl.Boss
		}
	}
	return wave
}

func (g *Game) levelTemplate(level int) (defs.StoryLevel, bool) {
	if level < 1 || level > len(g.levels) {
		return defs.StoryLevel{}, false
	}
	return g.levels[level-1], true
}

func (g *Game) notify(message string, kind component.NotificationKind) {
	g.notice = component.Notification{Message: message, Kind: kind, TTL: config.NotificationTTL}
}

// --- accessors ---

func (g *Game) Phase() component.Phase { return g.phase }
func (g *Game) Mode() component.Mode   { return g.mode }
func (g *Game) Score() int             { return g.score }
func (g *Game) Level() int             { return g.wave.Level }
func (g *Game) Cures() int             { return g.curesCollected }
func (g *Game) GameTime() float64      { return g.gameTime }
func (g *Game) Wave() *component.Wave  { return g.wave }

func (g *Game) Params() difficulty.Params { return g.SpawnSystem.Params() }

// Stats — статистика забега в том виде, в каком её видит советник
func (g *Game) Stats() difficulty.Request {
	return difficulty.Request{
		PlayerScore:       g.score,
		Level:             g.wave.Level,
		EnemiesDefeated:   g.enemiesDefeated,
		PowerUpsCollected: g.powerUpsCollected,
		GameTime:          g.gameTime,
		RunID:             g.RunID,
	}
}

// Notice возвращает актуальное уведомление HUD.
func (g *Game) Notice() (component.Notification, bool) {
	return g.notice, g.notice.TTL > 0
}

// PowerUpTimer — округлённый вверх остаток самого долгого активного усиления.
func (g *Game) PowerUpTimer() int {
	longest := 0.0
	if p := g.ECS.Player; p != nil {
		for _, effect := range p.PowerUps {
			if effect.Active {
				longest = math.Max(longest, effect.Duration)
			}
		}
	}
	return int(math.Ceil(longest))
}

// Dialogue — заголовок и текущая реплика экрана перехода.
func (g *Game) Dialogue() (title, line string) {
	if tpl, ok := g.levelTemplate(g.wave.Level); ok {
		title = tpl.Title
	}
	if g.dialogueIndex < len(g.dialogue) {
		line = g.dialogue[g.dialogueIndex]
	}
	return title, line
}

// PlayerHealth — текущее и максимальное здоровье корабля
func (g *Game) PlayerHealth() (health, max int) {
	if p := g.ECS.Player; p != nil {
		return p.Health, p.MaxHealth
	}
	return 0, 0
}

// TotalLevels — число сюжетных уровней
func (g *Game) TotalLevels() int { return len(g.levels) }
