// internal/system/collision.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/event"
	"cosmic-drifter/internal/types"
	"cosmic-drifter/internal/utils"
)

// CollisionSystem проверяет столкновения в фиксированном порядке и применяет
// последствия: урон, очки, трофеи босса, подбор бонусов.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	spawner         *SpawnSystem
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, spawner *SpawnSystem) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher, spawner: spawner}
}

// Update — один проход за кадр. После гибели игрока проход прекращается.
func (s *CollisionSystem) Update(wave *component.Wave) {
	p := s.ecs.Player
	if p == nil || p.Dead() {
		return
	}

	s.playerBulletsVsEnemies(wave)
	if !p.Invincible {
		if s.playerVsEnemies(p) || s.enemyBulletsVsPlayer(p) {
			return
		}
	}
	s.playerVsPowerUps(p)
}

func (s *CollisionSystem) playerBulletsVsEnemies(wave *component.Wave) {
	s.ecs.Bullets.Each(func(bulletID types.EntityID, b *component.Bullet) bool {
		if b.Owner != component.OwnerPlayer {
			return true
		}
		s.ecs.Enemies.Each(func(enemyID types.EntityID, e *component.Enemy) bool {
			if !utils.CirclesOverlap(b.X, b.Y, b.Radius, e.X, e.Y, e.Radius) {
				return true
			}
			s.ecs.Bullets.Remove(bulletID)
			if ApplyDamage(&e.Health, 1) {
				s.destroyEnemy(enemyID, e, wave)
			}
			return false
		})
		return true
	})
}

func (s *CollisionSystem) destroyEnemy(id types.EntityID, e *component.Enemy, wave *component.Wave) {
	s.ecs.Enemies.Remove(id)
	data := event.EnemyDestroyedData{X: e.X, Y: e.Y, Boss: e.IsBoss(), Score: config.ScoreStandard}
	if e.IsBoss() {
		data.Score = config.ScoreBoss
		s.spawner.DropBossLoot(e, wave)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: data})
	if e.IsBoss() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: data})
	}
}

// playerVsEnemies — таран и лазер. Возвращает true, если игрок погиб.
func (s *CollisionSystem) playerVsEnemies(p *component.Player) bool {
	died := false
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if utils.CirclesOverlap(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
			if !e.IsBoss() {
				s.ecs.Enemies.Remove(id)
			}
			if died = s.damagePlayer(p, config.ContactDamage); died {
				return false
			}
		}
		if e.IsBoss() && LaserHits(e, p) {
			if died = s.damagePlayer(p, config.LaserDamage); died {
				return false
			}
		}
		return true
	})
	return died
}

func (s *CollisionSystem) enemyBulletsVsPlayer(p *component.Player) bool {
	died := false
	s.ecs.Bullets.Each(func(id types.EntityID, b *component.Bullet) bool {
		if b.Owner != component.OwnerEnemy || !utils.CirclesOverlap(p.X, p.Y, p.Radius, b.X, b.Y, b.Radius) {
			return true
		}
		s.ecs.Bullets.Remove(id)
		died = s.damagePlayer(p, config.EnemyBulletDamage)
		return !died
	})
	return died
}

func (s *CollisionSystem) playerVsPowerUps(p *component.Player) {
	s.ecs.PowerUps.Each(func(id types.EntityID, pu *component.PowerUp) bool {
		if !utils.CirclesOverlap(p.X, p.Y, p.Radius, pu.X, pu.Y, pu.Radius) {
			return true
		}
		s.ecs.PowerUps.Remove(id)
		upgrade, level := CollectPowerUp(p, pu.Type)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PowerUpCollected,
			Data: event.PowerUpData{Type: string(pu.Type), Upgrade: string(upgrade), Level: level},
		})
		return true
	})
}

// damagePlayer применяет урон; PlayerDied уходит ровно один раз.
func (s *CollisionSystem) damagePlayer(p *component.Player, damage int) bool {
	died := ApplyDamage(&p.Health, damage)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: damage})
	if died {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
	return died
}
