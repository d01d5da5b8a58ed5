// internal/entity/pool.go
package entity

import "cosmic-drifter/internal/types"

type slot[T any] struct {
	id    types.EntityID
	value *T
	dead  bool
}

// Pool — арена сущностей одного вида. Порядок обхода совпадает с порядком
// добавления; Remove только помечает слот, физическое удаление делает Compact,
// поэтому удалять можно прямо во время Each.
type Pool[T any] struct {
	slots []slot[T]
	index map[types.EntityID]int
	alive int
}

func NewPool[T any]() *Pool[T] {
	return &Pool[T]{index: make(map[types.EntityID]int)}
}

// Add кладёт значение в арену под выданным ID.
func (p *Pool[T]) Add(id types.EntityID, value *T) {
	p.index[id] = len(p.slots)
	p.slots = append(p.slots, slot[T]{id: id, value: value})
	p.alive++
}

// Get возвращает живую сущность по ID.
func (p *Pool[T]) Get(id types.EntityID) (*T, bool) {
	i, ok := p.index[id]
	if !ok || p.slots[i].dead {
		return nil, false
	}
	return p.slots[i].value, true
}

// Alive — жива ли сущность
func (p *Pool[T]) Alive(id types.EntityID) bool {
	_, ok := p.Get(id)
	return ok
}

// Remove помечает сущность удалённой. Повторный вызов ничего не делает.
func (p *Pool[T]) Remove(id types.EntityID) bool {
	i, ok := p.index[id]
	if !ok || p.slots[i].dead {
		return false
	}
	p.slots[i].dead = true
	p.alive--
	return true
}

// Len — число живых сущностей
func (p *Pool[T]) Len() int {
	return p.alive
}

// Each обходит живые сущности в порядке добавления. Сущности, добавленные
// во время обхода, в него не попадают. fn возвращает false, чтобы остановиться.
func (p *Pool[T]) Each(fn func(id types.EntityID, v *T) bool) {
	n := len(p.slots)
	for i := 0; i < n; i++ {
		s := p.slots[i]
		if s.dead {
			continue
		}
		if !fn(s.id, s.value) {
			return
		}
	}
}

// IDs — снимок ID живых сущностей
func (p *Pool[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, p.alive)
	p.Each(func(id types.EntityID, _ *T) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Compact убирает помеченные слоты, сохраняя порядок.
func (p *Pool[T]) Compact() {
	if p.alive == len(p.slots) {
		return
	}
	kept := p.slots[:0]
	for _, s := range p.slots {
		if s.dead {
			delete(p.index, s.id)
			continue
		}
		p.index[s.id] = len(kept)
		kept = append(kept, s)
	}
	clear(p.slots[len(kept):])
	p.slots = kept
}

// Clear удаляет всё
func (p *Pool[T]) Clear() {
	p.slots = nil
	p.index = make(map[types.EntityID]int)
	p.alive = 0
}
