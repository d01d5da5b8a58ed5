// internal/component/movement.go
package component

// Body — кинематическая основа всех игровых сущностей
type Body struct {
	X, Y   float64
	Radius float64 // радиус столкновения и отрисовки
	Speed  float64 // скалярная скорость, пикселей в секунду
	DX, DY float64 // направление
}

// Advance сдвигает тело вдоль направления на speed*dt
func (b *Body) Advance(dt float64) {
	b.X += b.DX * b.Speed * dt
	b.Y += b.DY * b.Speed * dt
}
