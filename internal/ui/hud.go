// internal/ui/hud.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/interfaces"
	"cosmic-drifter/internal/render"
)

const hudMargin = 20

// HUD — верхняя панель забега: здоровье, счёт, уровень, лекарства, уведомления.
type HUD struct {
	health *PlayerHealthIndicator
}

func NewHUD() *HUD {
	return &HUD{health: NewPlayerHealthIndicator(hudMargin, hudMargin+10)}
}

func (h *HUD) Draw(screen *ebiten.Image, ctx interfaces.HUDContext) {
	v := render.ProjectHUD(ctx)
	right := float64(config.ScreenWidth - hudMargin)

	h.health.Draw(screen, v.HealthFraction, v.Health)

	drawCentered(screen, v.Score, screenCenterX(), hudMargin+24, 3, config.TextLightColor)
	drawCentered(screen, v.Level, screenCenterX(), hudMargin+44, 1, config.TextLightColor)

	y := float64(hudMargin + 20)
	if v.Cures != "" {
		drawRightAligned(screen, v.Cures, right, y, 2, config.CureColor)
		drawRightAligned(screen, "Cures", right, y+18, 1, config.TextLightColor)
		y += 44
	}
	if v.Notice != "" {
		drawRightAligned(screen, v.Notice, right, y, 1, v.NoticeColor)
	}

	if v.PowerUpTimer != "" {
		drawCentered(screen, v.PowerUpTimer, screenCenterX(), 90, 1, config.TextLightColor)
	}
}
