// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры. Enter и Exit вызываются машиной при смене экрана.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран и передаёт ему тик и отрисовку.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает текущий экран и открывает новый. nil оставляет машину пустой.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

// Current — активный экран или nil
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
