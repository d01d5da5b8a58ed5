// internal/component/powerup.go
package component

// PowerUpType — тип подбираемого усиления
type PowerUpType string

const (
	MultiShot PowerUpType = "multiShot"
	RapidFire PowerUpType = "rapidFire"
	Cure      PowerUpType = "cure"
)

// PowerUp — падающий бонус
type PowerUp struct {
	Body
	Type PowerUpType
}
