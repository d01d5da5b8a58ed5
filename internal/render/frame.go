// Package render projects simulation state into a flat, back-to-front list of
// shapes. It does not depend on ebiten, so it can be tested without a window.
package render

import "image/color"

// Shape — форма запасной отрисовки, когда спрайта нет
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
)

// Rect — прямоугольник в координатах поля
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Glyph — сущность, рисуемая спрайтом или векторной фигурой
type Glyph struct {
	X, Y, Radius float64
	Sprite       string // пустой ключ — сразу фигура
	Shape        Shape
	Color        color.RGBA
	Border       color.RGBA
	HasBorder    bool
	Rotation     float64 // радианы
	Label        string
	LabelColor   color.RGBA
}

// Bar — полоска здоровья с обводкой
type Bar struct {
	X, Y, W, H float64
	Fraction   float64
	Fore, Back color.RGBA
	Stroke     color.RGBA
}

// Burst — взрыв; Progress растёт от 0 до 1
type Burst struct {
	X, Y, Radius float64
	Progress     float64
	Sprite       string
	Color        color.RGBA
}

// Frame — снимок кадра в порядке отрисовки
type Frame struct {
	Stars      []Rect
	Player     *Glyph
	Bullets    []Glyph
	Lasers     []Rect
	Enemies    []Glyph
	BossBars   []Bar
	PowerUps   []Glyph
	Explosions []Burst
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
