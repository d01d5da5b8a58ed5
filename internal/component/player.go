// internal/component/player.go
package component

// PowerUpEffect — активный эффект усиления с уровнем и остатком времени
type PowerUpEffect struct {
	Active   bool
	Duration float64 // секунды, только убывает
	Level    int
}

// Player — корабль игрока. На забег существует ровно один.
type Player struct {
	Body
	Health       int
	MaxHealth    int
	Invincible   bool
	PowerUps     map[PowerUpType]*PowerUpEffect
	FireCooldown float64 // до следующего автоматического выстрела
}

func NewPlayer(x, y, radius, speed float64, health int) *Player {
	return &Player{
		Body:      Body{X: x, Y: y, Radius: radius, Speed: speed},
		Health:    health,
		MaxHealth: health,
		PowerUps:  make(map[PowerUpType]*PowerUpEffect),
	}
}

// EffectLevel возвращает достигнутый уровень эффекта или base, если его ещё не подбирали.
// Уровень не падает по истечении времени: Active и Duration нужны только таймеру HUD.
func (p *Player) EffectLevel(t PowerUpType, base int) int {
	if effect, ok := p.PowerUps[t]; ok && effect.Level > 0 {
		return effect.Level
	}
	return base
}

// Dead — здоровье исчерпано
func (p *Player) Dead() bool {
	return p.Health <= 0
}
