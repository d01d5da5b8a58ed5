// internal/system/visual_effect.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/types"
	"cosmic-drifter/internal/utils"
)

// VisualEffectSystem ведёт косметику: взрывы и звёздный фон.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// SeedStars заполняет фон звёздами со случайными позицией, размером и скоростью.
func (s *VisualEffectSystem) SeedStars(count int) {
	s.ecs.Stars = make([]component.Star, count)
	for i := range s.ecs.Stars {
		s.ecs.Stars[i] = component.Star{
			X:     s.rng.Range(0, config.ScreenWidth),
			Y:     s.rng.Range(0, config.ScreenHeight),
			Size:  s.rng.Range(1, 3),
			Speed: s.rng.Range(10, 40),
		}
	}
}

// UpdateExplosions старит взрывы и удаляет отыгравшие.
func (s *VisualEffectSystem) UpdateExplosions(deltaTime float64) {
	s.ecs.Explosions.Each(func(id types.EntityID, ex *component.Explosion) bool {
		ex.Elapsed += deltaTime
		if ex.Elapsed >= ex.Duration {
			s.ecs.Explosions.Remove(id)
		}
		return true
	})
}

// UpdateStars сдвигает звёзды вниз; ушедшая за край появляется сверху в новом x.
func (s *VisualEffectSystem) UpdateStars(deltaTime float64) {
	for i := range s.ecs.Stars {
		star := &s.ecs.Stars[i]
		star.Y += star.Speed * deltaTime
		if star.Y > config.ScreenHeight {
			star.Y = 0
			star.X = s.rng.Range(0, config.ScreenWidth)
		}
	}
}
