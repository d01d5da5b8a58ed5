package entity

import (
	"testing"

	"cosmic-drifter/internal/component"
	"cosmic-drifter/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRemoveDuringIterationKeepsOrder(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for i := 0; i < 5; i++ {
		ids = append(ids, ecs.AddEnemy(&component.Enemy{Health: i + 1}))
	}

	var seen []int
	ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		seen = append(seen, e.Health)
		if e.Health%2 == 0 {
			ecs.Enemies.Remove(id)
		}
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
	assert.Equal(t, 3, ecs.Enemies.Len())
	assert.False(t, ecs.Enemies.Alive(ids[1]))

	ecs.Compact()
	var left []int
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) bool {
		left = append(left, e.Health)
		return true
	})
	assert.Equal(t, []int{1, 3, 5}, left)

	e, ok := ecs.Enemies.Get(ids[4])
	require.True(t, ok)
	assert.Equal(t, 5, e.Health)
}

func TestPoolRemoveIsIdempotent(t *testing.T) {
	p := NewPool[component.Bullet]()
	p.Add(7, &component.Bullet{})
	assert.True(t, p.Remove(7))
	assert.False(t, p.Remove(7))
	assert.False(t, p.Remove(8))
	assert.Equal(t, 0, p.Len())
}

func TestPoolEachSkipsEntitiesAddedDuringScan(t *testing.T) {
	ecs := NewECS()
	ecs.AddBullet(&component.Bullet{})
	count := 0
	ecs.Bullets.Each(func(types.EntityID, *component.Bullet) bool {
		count++
		ecs.AddBullet(&component.Bullet{})
		return true
	})
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, ecs.Bullets.Len())
}

func TestECSIDsAreStableAcrossCompaction(t *testing.T) {
	ecs := NewECS()
	a := ecs.AddPowerUp(&component.PowerUp{Type: component.Cure})
	b := ecs.AddPowerUp(&component.PowerUp{Type: component.MultiShot})
	ecs.PowerUps.Remove(a)
	ecs.Compact()

	pu, ok := ecs.PowerUps.Get(b)
	require.True(t, ok)
	assert.Equal(t, component.MultiShot, pu.Type)
	assert.Equal(t, []types.EntityID{b}, ecs.PowerUps.IDs())

	ecs.Clear()
	assert.Equal(t, 0, ecs.PowerUps.Len())
	assert.Nil(t, ecs.Player)
}
