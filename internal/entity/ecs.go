// internal/entity/ecs.go
package entity

import (
	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/types"
)

// ECS — единственный владелец коллекций сущностей забега
type ECS struct {
	NextID     types.EntityID
	Player     *component.Player
	Enemies    *Pool[component.Enemy]
	Bullets    *Pool[component.Bullet]
	PowerUps   *Pool[component.PowerUp]
	Explosions *Pool[component.Explosion]
	Stars      []component.Star
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Enemies:    NewPool[component.Enemy](),
		Bullets:    NewPool[component.Bullet](),
		PowerUps:   NewPool[component.PowerUp](),
		Explosions: NewPool[component.Explosion](),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies.Add(id, e)
	return id
}

func (ecs *ECS) AddBullet(b *component.Bullet) types.EntityID {
	id := ecs.NewEntity()
	ecs.Bullets.Add(id, b)
	return id
}

func (ecs *ECS) AddPowerUp(pu *component.PowerUp) types.EntityID {
	id := ecs.NewEntity()
	ecs.PowerUps.Add(id, pu)
	return id
}

func (ecs *ECS) AddExplosion(ex *component.Explosion) types.EntityID {
	id := ecs.NewEntity()
	ecs.Explosions.Add(id, ex)
	return id
}

// Compact физически удаляет помеченные сущности во всех пулах
func (ecs *ECS) Compact() {
	ecs.Enemies.Compact()
	ecs.Bullets.Compact()
	ecs.PowerUps.Compact()
	ecs.Explosions.Compact()
}

// Clear сбрасывает все коллекции, кроме звёзд фона
func (ecs *ECS) Clear() {
	ecs.Player = nil
	ecs.Enemies.Clear()
	ecs.Bullets.Clear()
	ecs.PowerUps.Clear()
	ecs.Explosions.Clear()
}
