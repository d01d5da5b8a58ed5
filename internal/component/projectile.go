// internal/component/projectile.go
package component

import "image/color"

// Owner — чей это снаряд
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet представляет летящий снаряд. Цвет и обводка только косметические.
type Bullet struct {
	Body
	Owner       Owner
	Color       color.RGBA
	BorderColor color.RGBA
	HasBorder   bool
}
