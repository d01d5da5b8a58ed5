// internal/state/devices.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cosmic-drifter/internal/input"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput снимает состояние клавиатуры, мыши и первого касания.
func readInput() input.Frame {
	f := input.Frame{
		Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),

		Confirm:  anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace),
		Pause:    anyJustPressed(ebiten.KeyP, ebiten.KeyEscape),
		Restart:  anyJustPressed(ebiten.KeyR),
		Mute:     anyJustPressed(ebiten.KeyM),
		PrevMode: anyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		NextMode: anyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyTab),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		f.Pointer, f.PointerX, f.PointerY = true, float64(x), float64(y)
	} else if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		f.Pointer, f.PointerX, f.PointerY = true, float64(x), float64(y)
	}
	return f
}
