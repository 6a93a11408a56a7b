package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"nova-arena/internal/shared/input"
)

// ReadInput samples held movement keys and the cursor. The window and the
// arena share a coordinate space, so the cursor position doubles as the aim
// point.
func ReadInput() input.State {
	mx, my := ebiten.CursorPosition()
	return input.State{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		AimX:  float32(mx),
		AimY:  float32(my),
	}
}
