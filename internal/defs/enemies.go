// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"

	"cosmic-drifter/internal/config"
)

// StandardEnemyHealth is the base health of a regular enemy on a level.
func StandardEnemyHealth(level int) int {
	switch {
	case level >= 4:
		return 4
	case level == 3:
		return 3
	default:
		return 1
	}
}

// StandardEnemyVolley lists aim offsets (radians) of a regular enemy's shot.
// Nil means the enemy does not shoot on this level.
func StandardEnemyVolley(level int) []float64 {
	switch {
	case level >= 4:
		return []float64{-config.EnemySpreadAngle, config.EnemySpreadAngle}
	case level >= 2:
		return []float64{0}
	default:
		return nil
	}
}

// BossHealth grows with the square of the level.
func BossHealth(level int) int {
	return config.BossHealthFactor * level * level
}

// BossVisual is the cosmetic look of a level's boss.
type BossVisual struct {
	Sprite string
	Color  color.RGBA
}

// BossVisualFor picks the sprite of bosses 1-4; later bosses use the vector fallback.
func BossVisualFor(level int) BossVisual {
	v := BossVisual{Color: config.BossColor}
	if level >= 1 && level <= 4 {
		v.Sprite = fmt.Sprintf("boss%d", level)
	}
	return v
}
