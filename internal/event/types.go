// internal/event/types.go
package event

const (
	PlayerFired      EventType = "PlayerFired"      // автоматический выстрел игрока
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Data: EnemyDestroyedData
	BossSpawned      EventType = "BossSpawned"      // Data: int (уровень)
	BossDefeated     EventType = "BossDefeated"     // Data: EnemyDestroyedData
	PlayerDamaged    EventType = "PlayerDamaged"    // Data: int (урон)
	PlayerDied       EventType = "PlayerDied"       // отправляется один раз за забег
	PowerUpCollected EventType = "PowerUpCollected" // Data: PowerUpData
	LevelStarted     EventType = "LevelStarted"     // Data: int (уровень)
	LevelCompleted   EventType = "LevelCompleted"   // Data: int (уровень)
	PhaseChanged     EventType = "PhaseChanged"     // Data: PhaseChange
)

// EnemyDestroyedData — кто погиб и сколько очков принёс
type EnemyDestroyedData struct {
	X, Y  float64
	Boss  bool
	Score int
}

// PowerUpData — что подобрано и к чему это привело
type PowerUpData struct {
	Type    string
	Upgrade string // какой эффект в итоге усилен: multiShot, rapidFire или cure
	Level   int
}

// PhaseChange — переход машины состояний
type PhaseChange struct {
	From, To string
}
