// internal/app/events.go
package app

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/event"
)

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyDestroyed:
		if data, ok := e.Data.(event.EnemyDestroyedData); ok {
			g.score += data.Score
			g.enemiesDefeated++
		}
	case event.BossSpawned:
		g.notify("Boss Incoming!", component.NoticeBoss)
	case event.PowerUpCollected:
		data, ok := e.Data.(event.PowerUpData)
		if !ok {
			return
		}
		g.powerUpsCollected++
		switch component.PowerUpType(data.Upgrade) {
		case component.MultiShot:
			g.notify("Weapon Upgrade!", component.NoticePowerUp)
		case component.RapidFire:
			g.notify("Fire Rate Increased!", component.NoticePowerUp)
		case component.Cure:
			g.curesCollected++
			g.notify("Cure Collected!", component.NoticePowerUp)
			g.completeLevel()
		}
	case event.PlayerDied:
		g.gameOver()
	case event.LevelCompleted:
		if level, ok := e.Data.(int); ok && level == g.wave.Level {
			g.advanceLevel()
		}
	}
}
