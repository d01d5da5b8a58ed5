// internal/system/projectile.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/types"
)

// ProjectileSystem двигает снаряды по прямой и убирает улетевшие
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.ecs.Bullets.Each(func(id types.EntityID, b *component.Bullet) bool {
		b.Advance(deltaTime)
		if offscreen(&b.Body) {
			s.ecs.Bullets.Remove(id)
		}
		return true
	})
}
