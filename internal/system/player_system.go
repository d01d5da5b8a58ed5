// internal/system/player_system.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/utils"
)

// PlayerSystem двигает корабль по накопленному намерению и ведёт таймеры усилений
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

func (s *PlayerSystem) Update(deltaTime float64, intent component.Intent) {
	p := s.ecs.Player
	if p == nil {
		return
	}

	p.DX, p.DY = steer(p, intent)
	p.Advance(deltaTime)
	p.X = utils.Clamp(p.X, p.Radius, config.ScreenWidth-p.Radius)
	p.Y = utils.Clamp(p.Y, p.Radius, config.ScreenHeight-p.Radius)

	for _, effect := range p.PowerUps {
		if !effect.Active {
			continue
		}
		effect.Duration -= deltaTime
		if effect.Duration <= 0 {
			effect.Duration = 0
			effect.Active = false
		}
	}
}

// steer возвращает единичное направление: перетаскивание тянет к цели,
// зажатые клавиши перекрывают соответствующую ось.
func steer(p *component.Player, intent component.Intent) (float64, float64) {
	var dx, dy float64
	if intent.Dragging && utils.Distance(p.X, p.Y, intent.TargetX, intent.TargetY) > config.DragStopRadius {
		dx, dy = utils.Normalize(intent.TargetX-p.X, intent.TargetY-p.Y)
	}
	if intent.Up {
		dy = -1
	}
	if intent.Down {
		dy = 1
	}
	if intent.Left {
		dx = -1
	}
	if intent.Right {
		dx = 1
	}
	return utils.Normalize(dx, dy)
}

// CollectPowerUp применяет подобранный бонус и сообщает, что в итоге усилено.
// Уровни растут от достигнутого значения до потолка, подбор перезапускает таймер.
func CollectPowerUp(p *component.Player, kind component.PowerUpType) (component.PowerUpType, int) {
	switch kind {
	case component.MultiShot:
		level := p.EffectLevel(component.MultiShot, 1)
		if level < config.MaxMultiShotLevel {
			p.PowerUps[component.MultiShot] = &component.PowerUpEffect{Active: true, Duration: config.PowerUpDuration, Level: level + 1}
			return component.MultiShot, level + 1
		}
		return component.RapidFire, raiseRapidFire(p)
	case component.RapidFire:
		return component.RapidFire, raiseRapidFire(p)
	default:
		return kind, 0
	}
}

func raiseRapidFire(p *component.Player) int {
	level := min(p.EffectLevel(component.RapidFire, 0)+1, config.MaxRapidFireLevel)
	p.PowerUps[component.RapidFire] = &component.PowerUpEffect{Active: true, Duration: config.PowerUpDuration, Level: level}
	return level
}
