package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current frame's input state. Update polls the keyboard
// once per tick; tests set the fields directly.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true on the frame a jump key (space or up) is pressed.
	JumpPressed bool
	// ConfirmPressed is true on the frame space is pressed; end screens use
	// it to return to the menu.
	ConfirmPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and refreshes the frame's input state.
func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	i.MoveX = moveX

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp)
	i.ConfirmPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
