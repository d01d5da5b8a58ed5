package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, PlayerDied, BossSpawned)

	d.Dispatch(Event{Type: PlayerDied})
	d.Dispatch(Event{Type: PlayerFired})
	d.Dispatch(Event{Type: BossSpawned, Data: 2})

	assert.Equal(t, []EventType{PlayerDied, BossSpawned}, r.got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerDamaged, r)
	d.Unsubscribe(PlayerDamaged, r)
	d.Dispatch(Event{Type: PlayerDamaged, Data: 15})
	assert.Empty(t, r.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var data interface{}
	d.Subscribe(LevelStarted, ListenerFunc(func(e Event) { data = e.Data }))
	d.Dispatch(Event{Type: LevelStarted, Data: 3})
	assert.Equal(t, 3, data)
}
