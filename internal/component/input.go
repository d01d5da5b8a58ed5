// internal/component/input.go
package component

// Intent — намерение движения, которое ввод накапливает между тиками
type Intent struct {
	Up, Down, Left, Right bool
	Dragging              bool // указатель зажат
	TargetX, TargetY      float64
}
