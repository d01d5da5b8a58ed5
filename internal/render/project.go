package render

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/types"
)

const (
	bossBarHeight = 10.0
	bossBarOffset = 20.0
	powerUpSpin   = 2.0 // рад/с
)

// Project собирает кадр из текущего состояния. gameTime вращает бонусы.
func Project(ecs *entity.ECS, gameTime float64) Frame {
	var f Frame

	f.Stars = make([]Rect, len(ecs.Stars))
	for i, s := range ecs.Stars {
		f.Stars[i] = Rect{X: s.X, Y: s.Y, W: s.Size, H: s.Size, Color: config.StarColor}
	}

	if p := ecs.Player; p != nil {
		c := config.PlayerColor
		if effect, ok := p.PowerUps[component.MultiShot]; ok && effect.Active {
			c = config.PlayerBoostColor
		}
		f.Player = &Glyph{X: p.X, Y: p.Y, Radius: p.Radius, Sprite: "player", Shape: ShapeTriangle, Color: c}
	}

	f.Bullets = make([]Glyph, 0, ecs.Bullets.Len())
	ecs.Bullets.Each(func(_ types.EntityID, b *component.Bullet) bool {
		g := Glyph{X: b.X, Y: b.Y, Radius: b.Radius, Shape: ShapeCircle, Color: b.Color, Border: b.BorderColor, HasBorder: b.HasBorder}
		if g.Color.A == 0 {
			g.Color = config.EnemyBulletColor
			if b.Owner == component.OwnerPlayer {
				g.Color = config.PlayerBulletColor
			}
		}
		f.Bullets = append(f.Bullets, g)
		return true
	})

	f.Enemies = make([]Glyph, 0, ecs.Enemies.Len())
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) bool {
		g := Glyph{X: e.X, Y: e.Y, Radius: e.Radius, Sprite: e.Sprite, Shape: ShapeSquare, Color: e.Color}
		if e.IsBoss() {
			g.Shape = ShapeCircle
			if e.LaserActive {
				f.Lasers = append(f.Lasers, Rect{
					X: e.X - config.LaserWidth/2, Y: e.Y,
					W: config.LaserWidth, H: config.ScreenHeight - e.Y,
					Color: config.LaserColor,
				})
			}
			if e.MaxHealth > 0 {
				f.BossBars = append(f.BossBars, Bar{
					X: e.X - e.Radius, Y: e.Y - e.Radius - bossBarOffset,
					W: e.Radius * 2, H: bossBarHeight,
					Fraction: float64(e.Health) / float64(e.MaxHealth),
					Fore:     config.BossColor, Back: config.BossBarBackColor, Stroke: config.IndicatorStroke,
				})
			}
		}
		f.Enemies = append(f.Enemies, g)
		return true
	})

	f.PowerUps = make([]Glyph, 0, ecs.PowerUps.Len())
	ecs.PowerUps.Each(func(_ types.EntityID, pu *component.PowerUp) bool {
		f.PowerUps = append(f.PowerUps, powerUpGlyph(pu, gameTime))
		return true
	})

	f.Explosions = make([]Burst, 0, ecs.Explosions.Len())
	ecs.Explosions.Each(func(_ types.EntityID, ex *component.Explosion) bool {
		progress := 1.0
		if ex.Duration > 0 {
			progress = min(ex.Elapsed/ex.Duration, 1)
		}
		f.Explosions = append(f.Explosions, Burst{X: ex.X, Y: ex.Y, Radius: ex.Radius, Progress: progress, Sprite: "explosion", Color: config.ExplosionColor})
		return true
	})

	return f
}

func powerUpGlyph(pu *component.PowerUp, gameTime float64) Glyph {
	g := Glyph{X: pu.X, Y: pu.Y, Radius: pu.Radius}
	switch pu.Type {
	case component.MultiShot:
		g.Shape, g.Color, g.Rotation = ShapeSquare, config.MultiShotColor, gameTime*powerUpSpin
		g.Label, g.LabelColor = "W", config.TextDarkColor
	case component.RapidFire:
		g.Shape, g.Color, g.Rotation = ShapeSquare, config.RapidFireColor, -gameTime*powerUpSpin
		g.Label, g.LabelColor = "F", config.TextLightColor
	default:
		g.Shape, g.Color = ShapeCircle, config.CureColor
		g.Label, g.LabelColor = "C", config.TextDarkColor
	}
	return g
}
