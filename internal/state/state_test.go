package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type tracingState struct {
	name string
	log  *[]string
}

func (s *tracingState) Enter() { *s.log = append(*s.log, s.name+":enter") }
func (s *tracingState) Update(float64) { *s.log = append(*s.log, s.name+":update") }
func (s *tracingState) Draw(*ebiten.Image) {}
func (s *tracingState) Exit() { *s.log = append(*s.log, s.name+":exit") }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016) // пустая машина ничего не делает

	a := &tracingState{name: "a", log: &log}
	b := &tracingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.SetState(nil)

	assert.Equal(t, []string{"a:enter", "a:update", "a:exit", "b:enter", "b:exit"}, log)
	assert.Nil(t, sm.Current())
}
