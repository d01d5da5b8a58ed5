// internal/system/weapon.go
package system

import (
	"math"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/event"
)

// WeaponSystem — автоматическая стрельба игрока
type WeaponSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// FireInterval — пауза между залпами для уровня rapidFire, не меньше MinFireInterval
func FireInterval(rapidFireLevel int) float64 {
	return math.Max(config.FireInterval-float64(rapidFireLevel)*config.FireIntervalStep, config.MinFireInterval)
}

func (s *WeaponSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	if p == nil || p.Dead() {
		return
	}

	p.FireCooldown -= deltaTime
	if p.FireCooldown > 0 {
		return
	}
	p.FireCooldown = FireInterval(p.EffectLevel(component.RapidFire, 0))

	muzzleY := p.Y - p.Radius
	switch level := p.EffectLevel(component.MultiShot, 1); {
	case level <= 1:
		s.shoot(p.X, muzzleY, 0)
	case level == 2:
		s.shoot(p.X-config.TwinShotOffset, muzzleY, 0)
		s.shoot(p.X+config.TwinShotOffset, muzzleY, 0)
	default:
		s.shoot(p.X, muzzleY, 0)
		s.shoot(p.X-config.SpreadShotOffset, muzzleY, -config.SpreadShotDX)
		s.shoot(p.X+config.SpreadShotOffset, muzzleY, config.SpreadShotDX)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerFired})
}

func (s *WeaponSystem) shoot(x, y, dx float64) {
	s.ecs.AddBullet(&component.Bullet{
		Body:  component.Body{X: x, Y: y, Radius: config.PlayerBulletRadius, Speed: config.PlayerBulletSpeed, DX: dx, DY: -1},
		Owner: component.OwnerPlayer,
		Color: config.PlayerBulletColor,
	})
}
