// internal/component/visual.go
package component

// Explosion — косметический эффект с фиксированным временем жизни.
type Explosion struct {
	X, Y     float64
	Radius   float64
	Duration float64 // общая продолжительность эффекта
	Elapsed  float64 // сколько времени эффект уже активен
}

// Star — точка фона, заворачивается по вертикали
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// NotificationKind определяет цвет всплывающего сообщения
type NotificationKind int

const (
	NoticePowerUp NotificationKind = iota
	NoticeBoss
)

// Notification — короткое сообщение в HUD
type Notification struct {
	Message string
	Kind    NotificationKind
	TTL     float64
}
