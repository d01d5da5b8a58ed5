// internal/component/enemy.go
package component

import "image/color"

// EnemyKind — вариант врага
type EnemyKind int

const (
	EnemyStandard EnemyKind = iota
	EnemyBoss
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Body
	Kind          EnemyKind
	Level         int // уровень, на котором появился; задаёт атаки босса
	Health        int
	MaxHealth     int
	FireCooldown  float64 // до следующей атаки
	ShotsFired    int     // каждый N-й выстрел босса — спецатака
	LaserActive   bool
	LaserDuration float64
	Color         color.RGBA // запасной цвет, если нет спрайта
	Sprite        string     // ключ изображения в менеджере ресурсов
}

func (e *Enemy) IsBoss() bool {
	return e.Kind == EnemyBoss
}
