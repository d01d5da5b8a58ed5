// internal/interfaces/game_context.go
package interfaces

import "cosmic-drifter/internal/component"

// HUDContext — то, что интерфейсу можно читать из забега
type HUDContext interface {
	Phase() component.Phase
	Mode() component.Mode
	Score() int
	Level() int
	TotalLevels() int
	Cures() int
	PlayerHealth() (health, max int)
	PowerUpTimer() int
	Notice() (component.Notification, bool)
	Dialogue() (title, line string)
}
