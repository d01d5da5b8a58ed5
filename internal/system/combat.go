// internal/system/combat.go
package system

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/config"
	"cosmic-drifter/internal/defs"
	"cosmic-drifter/internal/entity"
	"cosmic-drifter/internal/types"
	"cosmic-drifter/internal/utils"
)

// CombatSystem ведёт атаки врагов: прицельные выстрелы рядовых и
// табличные атаки босса со спецприёмами.
type CombatSystem struct {
	ecs     *entity.ECS
	spawner *SpawnSystem
}

func NewCombatSystem(ecs *entity.ECS, spawner *SpawnSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, spawner: spawner}
}

func (s *CombatSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	if p == nil {
		return
	}
	s.ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) bool {
		if e.IsBoss() {
			s.updateBoss(e, p, deltaTime)
		} else {
			s.updateStandard(e, p, deltaTime)
		}
		return true
	})
}

func (s *CombatSystem) updateStandard(e *component.Enemy, p *component.Player, deltaTime float64) {
	volley := defs.StandardEnemyVolley(e.Level)
	if volley == nil {
		return
	}
	e.FireCooldown -= deltaTime
	if e.FireCooldown > 0 {
		return
	}
	e.FireCooldown = config.EnemyFireCooldown
	fireVolley(s.ecs, e.X, e.Y, utils.AngleTo(e.X, e.Y, p.X, p.Y), volley, component.Bullet{
		Body:  component.Body{Radius: config.EnemyBulletRadius, Speed: config.EnemyBulletSpeed},
		Owner: component.OwnerEnemy,
		Color: config.EnemyBulletColor,
	})
}

func (s *CombatSystem) updateBoss(e *component.Enemy, p *component.Player, deltaTime float64) {
	if e.LaserActive {
		e.LaserDuration -= deltaTime
		if e.LaserDuration <= 0 {
			e.LaserDuration = 0
			e.LaserActive = false
		}
	}

	e.FireCooldown -= deltaTime
	if e.FireCooldown > 0 {
		return
	}
	e.FireCooldown = defs.BossFireCooldown(e.Level)
	e.ShotsFired++

	pattern := defs.BossPatternFor(e.Level)
	angle := utils.AngleTo(e.X, e.Y, p.X, p.Y)
	proto := component.Bullet{
		Body:        component.Body{Radius: config.BossBulletRadius, Speed: config.BossBulletSpeed},
		Owner:       component.OwnerEnemy,
		Color:       pattern.BulletColor,
		BorderColor: pattern.BorderColor,
		HasBorder:   pattern.HasBorder,
	}

	if e.ShotsFired%config.BossSpecialEvery != 0 {
		fireVolley(s.ecs, e.X, e.Y, angle, pattern.Volley, proto)
		return
	}

	switch pattern.Special {
	case defs.SpecialBigShot:
		proto.Radius = config.BossBigBulletRadius
		proto.Speed = config.BossBulletSpeed * config.BossBigBulletSpeedMul
		proto.HasBorder = false
		fireVolley(s.ecs, e.X, e.Y, angle, pattern.SpecialVolley, proto)
	case defs.SpecialLaser:
		e.LaserActive = true
		e.LaserDuration = config.LaserDuration
		if pattern.Reinforcements > 0 {
			s.spawner.SpawnEnemies(pattern.Reinforcements, e.Level)
		}
	}
}

// LaserHits — игрок внутри столба лазера: полоса LaserWidth по центру босса
// от его высоты до нижнего края.
func LaserHits(boss *component.Enemy, p *component.Player) bool {
	if !boss.LaserActive {
		return false
	}
	half := config.LaserWidth / 2
	return p.X > boss.X-half && p.X < boss.X+half && p.Y > boss.Y
}
