// internal/ui/overlay.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
)

const (
	titleScale    = 4
	dialogueWidth = 640
	lineHeight    = 22
)

const storyEndLine = "You've secured the package. Now, let's bring it home and save humanity."

func dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}

func hint(screen *ebiten.Image, s string, y float64) {
	drawCentered(screen, s, screenCenterX(), y, 1, config.TextLightColor)
}

// DrawLoading — экран загрузки с прогрессом ресурсов.
func DrawLoading(screen *ebiten.Image, settled, total int) {
	screen.Fill(config.BackgroundColor)
	cy := float64(config.ScreenHeight) / 2
	drawCentered(screen, "Loading Assets...", screenCenterX(), cy, titleScale, config.TextLightColor)

	if total > 0 {
		w := float32(dialogueWidth / 2)
		x := float32(screenCenterX()) - w/2
		y := float32(cy) + 30
		vector.DrawFilledRect(screen, x, y, w*float32(settled)/float32(total), 8, config.HealthBarColor, false)
		vector.StrokeRect(screen, x, y, w, 8, 1, config.IndicatorStroke, false)
		hint(screen, fmt.Sprintf("%d / %d", settled, total), float64(y)+30)
	}
}

// DrawMenu — выбор режима и старт.
func DrawMenu(screen *ebiten.Image, mode component.Mode, muted bool) {
	dim(screen)
	cy := float64(config.ScreenHeight) / 2
	drawCentered(screen, "COSMIC DRIFTER", screenCenterX(), cy-120, titleScale, config.PlayerBoostColor)
	drawCentered(screen, "Ready?", screenCenterX(), cy-40, 3, config.TextLightColor)

	story, endless := "  Story  ", "  Endless  "
	if mode == component.ModeStory {
		story = "[ Story ]"
	} else {
		endless = "[ Endless ]"
	}
	drawCentered(screen, story+"    "+endless, screenCenterX(), cy+20, 2, config.TextLightColor)

	hint(screen, "Left/Right: mode   Enter: Start Game", cy+70)
	sound := "on"
	if muted {
		sound = "off"
	}
	hint(screen, "M: sound "+sound, cy+92)
}

// DrawDialogue — заголовок уровня и текущая реплика.
func DrawDialogue(screen *ebiten.Image, title, line string) {
	drawStoryCard(screen, title, line, "Enter: Continue")
}

// DrawStoryEnd — финальный экран сюжета.
func DrawStoryEnd(screen *ebiten.Image, score int) {
	drawStoryCard(screen, "Mission Complete", storyEndLine, fmt.Sprintf("Score: %d   Enter: Return to Main Menu", score))
}

func drawStoryCard(screen *ebiten.Image, title, body, footer string) {
	dim(screen)
	cy := float64(config.ScreenHeight)/2 - 60
	drawCentered(screen, title, screenCenterX(), cy, 3, config.PlayerBoostColor)

	y := cy + 50
	for _, l := range wrap(body, dialogueWidth, 2) {
		drawCentered(screen, l, screenCenterX(), y, 2, config.TextLightColor)
		y += lineHeight * 1.5
	}
	hint(screen, footer, y+30)
}

// DrawPaused — поверх замороженного кадра.
func DrawPaused(screen *ebiten.Image, muted bool) {
	dim(screen)
	cy := float64(config.ScreenHeight) / 2
	drawCentered(screen, "Paused", screenCenterX(), cy, titleScale, config.TextLightColor)
	sound := "on"
	if muted {
		sound = "off"
	}
	hint(screen, "P/Esc: Resume   R: Main Menu   M: sound "+sound, cy+50)
}

// DrawGameOver — итог забега.
func DrawGameOver(screen *ebiten.Image, score int) {
	dim(screen)
	cy := float64(config.ScreenHeight) / 2
	drawCentered(screen, "Game Over", screenCenterX(), cy-20, titleScale, config.NoticeBossColor)
	hint(screen, "Your final score is:", cy+24)
	drawCentered(screen, fmt.Sprintf("%d", score), screenCenterX(), cy+64, 3, config.PlayerBoostColor)
	hint(screen, "Enter: Play Again   R: Main Menu", cy+100)
}
