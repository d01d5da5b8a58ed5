// internal/ui/painter.go
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/render"
)

// ImageSource — декодированные картинки, загруженные в фоне
type ImageSource interface {
	Image(name string) (image.Image, bool)
}

// whiteSubImage — источник цвета для DrawTriangles, создаётся при первой отрисовке
var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Painter рисует кадр: спрайт, если он загружен, иначе векторную фигуру.
type Painter struct {
	source  ImageSource
	sprites map[string]*ebiten.Image
}

func NewPainter(source ImageSource) *Painter {
	return &Painter{
		source:  source,
		sprites: make(map[string]*ebiten.Image),
	}
}

// sprite переводит картинку в текстуру при первом обращении.
// Вызывать только из Draw: ebiten создаёт текстуры в главном потоке.
func (p *Painter) sprite(name string) (*ebiten.Image, bool) {
	if name == "" || p.source == nil {
		return nil, false
	}
	if img, ok := p.sprites[name]; ok {
		return img, true
	}
	src, ok := p.source.Image(name)
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	p.sprites[name] = img
	return img, true
}

// Draw рисует кадр в порядке: фон, звёзды, игрок, пули, лазеры и враги, бонусы, взрывы.
func (p *Painter) Draw(screen *ebiten.Image, f render.Frame) {
	screen.Fill(config.BackgroundColor)

	for _, s := range f.Stars {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.Color, false)
	}
	if f.Player != nil {
		p.drawGlyph(screen, *f.Player)
	}
	for _, b := range f.Bullets {
		p.drawGlyph(screen, b)
	}
	for _, l := range f.Lasers {
		vector.DrawFilledRect(screen, float32(l.X), float32(l.Y), float32(l.W), float32(l.H), l.Color, false)
	}
	for _, e := range f.Enemies {
		p.drawGlyph(screen, e)
	}
	for _, bar := range f.BossBars {
		drawBar(screen, bar)
	}
	for _, pu := range f.PowerUps {
		p.drawGlyph(screen, pu)
	}
	for _, ex := range f.Explosions {
		p.drawBurst(screen, ex)
	}
}

func (p *Painter) drawGlyph(screen *ebiten.Image, g render.Glyph) {
	if img, ok := p.sprite(g.Sprite); ok {
		drawSprite(screen, img, g.X, g.Y, g.Radius, g.Rotation, 1)
	} else {
		drawShape(screen, g)
	}
	if g.Label != "" {
		drawCentered(screen, g.Label, g.X, g.Y+4, 1, g.LabelColor)
	}
}

func (p *Painter) drawBurst(screen *ebiten.Image, b render.Burst) {
	alpha := float32(1 - b.Progress)
	if img, ok := p.sprite(b.Sprite); ok {
		drawSprite(screen, img, b.X, b.Y, b.Radius, 0, alpha)
		return
	}
	c := b.Color
	c.A = uint8(float32(c.A) * alpha)
	r := float32(b.Radius * (0.5 + 0.5*b.Progress))
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), r, c, true)
}

// drawSprite вписывает картинку в квадрат 2r с центром в (x, y).
func drawSprite(screen, img *ebiten.Image, x, y, r, rotation float64, alpha float32) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(2*r/float64(w), 2*r/float64(h))
	if rotation != 0 {
		op.GeoM.Rotate(rotation)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func drawShape(screen *ebiten.Image, g render.Glyph) {
	x, y, r := float32(g.X), float32(g.Y), float32(g.Radius)
	switch g.Shape {
	case render.ShapeCircle:
		vector.DrawFilledCircle(screen, x, y, r, g.Color, true)
		if g.HasBorder {
			vector.StrokeCircle(screen, x, y, r, 2, g.Border, true)
		}
	case render.ShapeTriangle:
		var path vector.Path
		path.MoveTo(x, y-r)
		path.LineTo(x-r*0.8, y+r*0.8)
		path.LineTo(x+r*0.8, y+r*0.8)
		path.Close()
		fillPath(screen, &path, g.Color)
	case render.ShapeSquare:
		if g.Rotation == 0 {
			vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, g.Color, false)
			return
		}
		path := squarePath(g.X, g.Y, g.Radius, g.Rotation)
		fillPath(screen, path, g.Color)
		strokePath(screen, path, render.DarkenColor(g.Color))
	}
}

// squarePath — квадрат со стороной 2r, повёрнутый вокруг центра.
func squarePath(cx, cy, r, angle float64) *vector.Path {
	sin, cos := math.Sincos(angle)
	corner := func(dx, dy float64) (float32, float32) {
		return float32(cx + dx*cos - dy*sin), float32(cy + dx*sin + dy*cos)
	}
	var path vector.Path
	path.MoveTo(corner(-r, -r))
	path.LineTo(corner(r, -r))
	path.LineTo(corner(r, r))
	path.LineTo(corner(-r, r))
	path.Close()
	return &path
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(screen, vs, is, clr)
}

func strokePath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1.5})
	drawVertices(screen, vs, is, clr)
}

func drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whitePixel(), op)
}

func drawBar(screen *ebiten.Image, b render.Bar) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(screen, x, y, w, h, b.Back, false)
	if fill := w * float32(min(max(b.Fraction, 0), 1)); fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, h, b.Fore, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, b.Stroke, false)
}
