// internal/system/spawn.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/defs"
	"cosmic-drifter/internal/difficulty"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/event"
	"cosmic-drifter/internal/types"
	"cosmic-drifter/internal/utils"
)

// SpawnSystem решает, когда и кого выпускать: рядовых врагов, босса и его трофеи
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	mode            component.Mode
	params          difficulty.Params
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		params:          difficulty.Defaults(),
	}
}

func (s *SpawnSystem) SetMode(mode component.Mode) { s.mode = mode }

// SetParams подменяет параметры сложности одним присваиванием.
func (s *SpawnSystem) SetParams(p difficulty.Params) { s.params = p }

func (s *SpawnSystem) Params() difficulty.Params { return s.params }

// SpawnRate — множитель вероятности появления врага за кадр
func (s *SpawnSystem) SpawnRate() float64 {
	if s.mode == component.ModeEndless {
		return s.params.SpawnRate
	}
	return config.StorySpawnRate
}

func (s *SpawnSystem) Update(wave *component.Wave) {
	if wave == nil {
		return
	}
	story := s.mode == component.ModeStory
	if story && (wave.QuotaExhausted() || wave.BossFight) {
		return
	}
	if !s.rng.Chance(config.EnemySpawnChance * s.SpawnRate()) {
		return
	}
	s.SpawnEnemies(1, wave.Level)
	if story {
		wave.EnemiesToSpawn--
	}
}

// SpawnEnemies выпускает n рядовых врагов в случайных x над полем.
// Скорость фиксируется при появлении и дальше не пересчитывается.
func (s *SpawnSystem) SpawnEnemies(n, level int) []types.EntityID {
	ids := make([]types.EntityID, 0, n)
	health := defs.StandardEnemyHealth(level)
	for i := 0; i < n; i++ {
		ids = append(ids, s.ecs.AddEnemy(&component.Enemy{
			Body: component.Body{
				X:      s.rng.Range(0, config.ScreenWidth),
				Y:      config.EnemySpawnY,
				Radius: config.EnemyRadius,
				Speed:  config.EnemyBaseSpeed + s.rng.Float64()*config.EnemySpeedSpread*s.params.Speed,
				DY:     1,
			},
			Kind:         component.EnemyStandard,
			Level:        level,
			Health:       health,
			MaxHealth:    health,
			FireCooldown: s.rng.Range(0.1, 0.6),
			Color:        config.EnemyColor,
			Sprite:       "enemy",
		}))
	}
	return ids
}

// BossDue — квота выпущена, поле чисто, а босс уровня ещё не появлялся
func (s *SpawnSystem) BossDue(wave *component.Wave) bool {
	return s.mode == component.ModeStory && wave != nil &&
		wave.Boss && !wave.BossSpawned && !wave.BossFight &&
		wave.QuotaExhausted() && s.ecs.Enemies.Len() == 0
}

// SpawnBoss выпускает босса уровня не более одного раза.
func (s *SpawnSystem) SpawnBoss(wave *component.Wave) (types.EntityID, bool) {
	if wave == nil || wave.BossSpawned {
		return 0, false
	}
	health := defs.BossHealth(wave.Level)
	visual := defs.BossVisualFor(wave.Level)
	id := s.ecs.AddEnemy(&component.Enemy{
		Body: component.Body{
			X:      config.ScreenWidth / 2,
			Y:      config.BossY,
			Radius: config.BossRadius,
			Speed:  config.BossSpeed,
			DX:     s.rng.Sign(),
		},
		Kind:         component.EnemyBoss,
		Level:        wave.Level,
		Health:       health,
		MaxHealth:    health,
		FireCooldown: config.BossInitialCooldown,
		Color:        visual.Color,
		Sprite:       visual.Sprite,
	})
	wave.BossSpawned = true
	wave.BossFight = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: wave.Level})
	return id, true
}

// DropBossLoot оставляет лекарство, оружейный бонус и взрыв на месте босса.
func (s *SpawnSystem) DropBossLoot(boss *component.Enemy, wave *component.Wave) {
	s.ecs.AddPowerUp(&component.PowerUp{
		Body: component.Body{X: boss.X, Y: boss.Y, Radius: config.CureRadius, Speed: config.PowerUpFallSpeed, DY: 1},
		Type: component.Cure,
	})

	kind, dropX := component.MultiShot, boss.X-config.WeaponDropOffsetX
	if boss.Level%2 == 0 {
		kind, dropX = component.RapidFire, boss.X+config.WeaponDropOffsetX
	}
	s.ecs.AddPowerUp(&component.PowerUp{
		Body: component.Body{X: dropX, Y: boss.Y, Radius: config.WeaponDropRadius, Speed: config.PowerUpFallSpeed, DY: 1},
		Type: kind,
	})

	s.ecs.AddExplosion(&component.Explosion{
		X:        boss.X,
		Y:        boss.Y,
		Radius:   boss.Radius * 2,
		Duration: config.ExplosionDuration,
	})

	if wave != nil {
		wave.BossFight = false
	}
}
