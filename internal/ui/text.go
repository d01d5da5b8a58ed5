// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"cosmic-drifter/internal/config"
)

var face = basicfont.Face7x13

// textWidth — ширина строки в пикселях с учётом масштаба
func textWidth(s string, scale float64) float64 {
	return float64(text.BoundString(face, s).Dx()) * scale
}

// drawText рисует строку; y — базовая линия.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}

func drawCentered(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	drawText(dst, s, cx-textWidth(s, scale)/2, y, scale, clr)
}

func drawRightAligned(dst *ebiten.Image, s string, right, y, scale float64, clr color.Color) {
	drawText(dst, s, right-textWidth(s, scale), y, scale, clr)
}

// wrap разбивает текст по словам так, чтобы строка влезала в width.
func wrap(s string, width, scale float64) []string {
	var lines []string
	line := ""
	word := ""
	flush := func() {
		if word == "" {
			return
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && textWidth(candidate, scale) > width {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' || r == '\n' {
			flush()
			if r == '\n' && line != "" {
				lines = append(lines, line)
				line = ""
			}
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func screenCenterX() float64 { return config.ScreenWidth / 2 }
