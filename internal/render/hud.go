// internal/render/hud.go
package render

import (
	"fmt"
	"image/color"
	"strconv"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/interfaces"
)

// HUDView — готовые строки и доли для верхней панели
type HUDView struct {
	HealthFraction float64
	Health         string
	Score          string
	Level          string
	Cures          string // пусто вне сюжета
	PowerUpTimer   string // пусто, когда усилений нет
	Notice         string
	NoticeColor    color.RGBA
}

// ProjectHUD собирает панель из состояния забега.
func ProjectHUD(ctx interfaces.HUDContext) HUDView {
	var v HUDView

	health, maxHealth := ctx.PlayerHealth()
	if maxHealth > 0 {
		v.HealthFraction = float64(health) / float64(maxHealth)
	}
	v.Health = fmt.Sprintf("%d / %d", health, maxHealth)
	v.Score = strconv.Itoa(ctx.Score())

	if ctx.Mode() == component.ModeStory {
		v.Level = fmt.Sprintf("Level %d", ctx.Level())
		v.Cures = fmt.Sprintf("%d / %d", ctx.Cures(), config.TotalCures)
	} else {
		v.Level = "Endless"
	}

	if t := ctx.PowerUpTimer(); t > 0 {
		v.PowerUpTimer = fmt.Sprintf("Power-Up Time: %ds", t)
	}

	if n, ok := ctx.Notice(); ok {
		v.Notice = n.Message
		v.NoticeColor = config.NoticePowerColor
		if n.Kind == component.NoticeBoss {
			v.NoticeColor = config.NoticeBossColor
		}
	}
	return v
}
