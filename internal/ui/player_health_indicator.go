// internal/ui/player_health_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/render"
)

const (
	healthBarWidth  = 280
	healthBarHeight = 16
)

// PlayerHealthIndicator отображает здоровье игрока полосой с подписью.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует подпись "Health" и полосу под ней.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, fraction float64, label string) {
	drawText(screen, "Health", float64(i.X), float64(i.Y), 1, config.TextLightColor)

	barY := i.Y + 6
	back := render.DarkenColor(config.HealthBarColor)
	vector.DrawFilledRect(screen, i.X, barY, healthBarWidth, healthBarHeight, back, false)
	if fill := float32(min(max(fraction, 0), 1)) * healthBarWidth; fill > 0 {
		vector.DrawFilledRect(screen, i.X, barY, fill, healthBarHeight, config.HealthBarColor, false)
	}
	vector.StrokeRect(screen, i.X, barY, healthBarWidth, healthBarHeight, 1, config.IndicatorStroke, false)

	drawRightAligned(screen, label, float64(i.X+healthBarWidth), float64(i.Y), 1, config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return 6 + healthBarHeight
}
