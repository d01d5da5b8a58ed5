// internal/system/movement.go
package system

import (
	"math"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/types"
)

// MovementSystem двигает врагов, босса и падающие бонусы
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if e.IsBoss() {
			bounce(&e.Body, deltaTime)
			return true
		}
		e.Advance(deltaTime)
		if e.Y > config.ScreenHeight+e.Radius {
			s.ecs.Enemies.Remove(id)
		}
		return true
	})

	s.ecs.PowerUps.Each(func(id types.EntityID, pu *component.PowerUp) bool {
		pu.Advance(deltaTime)
		if pu.Y > config.ScreenHeight+pu.Radius {
			s.ecs.PowerUps.Remove(id)
		}
		return true
	})
}

// bounce — горизонтальное движение с отражением от краёв поля.
// Знак направления задаётся краем, поэтому тело не застревает за границей.
func bounce(b *component.Body, deltaTime float64) {
	b.X += b.DX * b.Speed * deltaTime
	switch {
	case b.X < b.Radius:
		b.DX = math.Abs(b.DX)
	case b.X > config.ScreenWidth-b.Radius:
		b.DX = -math.Abs(b.DX)
	}
}
