// internal/system/utils.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/utils"
)

// ApplyDamage снимает здоровье, не опуская его ниже нуля.
// Возвращает true, если удар оказался смертельным.
func ApplyDamage(health *int, damage int) bool {
	if *health <= 0 {
		return false
	}
	*health -= damage
	if *health <= 0 {
		*health = 0
		return true
	}
	return false
}

// fireVolley выпускает по снаряду на каждое смещение угла относительно angle.
func fireVolley(ecs *entity.ECS, x, y, angle float64, offsets []float64, proto component.Bullet) {
	for _, offset := range offsets {
		b := proto
		b.X, b.Y = x, y
		b.DX, b.DY = utils.Direction(angle + offset)
		ecs.AddBullet(&b)
	}
}

// offscreen — сущность целиком вышла за игровое поле
func offscreen(b *component.Body) bool {
	return b.Y+b.Radius < 0 || b.Y-b.Radius > config.ScreenHeight ||
		b.X+b.Radius < 0 || b.X-b.Radius > config.ScreenWidth
}
