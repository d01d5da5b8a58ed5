// internal/interfaces/game.go
package interfaces

import "cosmic-drifter/internal/component"

// Controls — команды, которые ввод отдаёт забегу
type Controls interface {
	SetIntent(intent component.Intent)
	SetMode(mode component.Mode) bool
	StartGame()
	NextDialogue()
	TogglePause()
	Restart()
}
