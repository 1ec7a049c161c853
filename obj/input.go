package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds one tick's worth of input state for movement, jumping, and
// dashing.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// LeftHeld/RightHeld mirror the raw directional keys for the HUD.
	LeftHeld  bool
	RightHeld bool
	// JumpPressed is true only on the tick the jump key went down.
	JumpPressed bool
	// DashPressed is true only on the tick the dash key went down.
	DashPressed bool
	// ZoomInPressed/ZoomOutPressed are edge-triggered camera zoom keys.
	ZoomInPressed  bool
	ZoomOutPressed bool
	// QuitPressed is true on the tick Escape went down.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad and refreshes all fields.
func (i *Input) Update() {
	i.LeftHeld = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	i.RightHeld = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)

	var moveX float64
	if i.LeftHeld {
		moveX -= 1
	}
	if i.RightHeld {
		moveX += 1
	}

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp)
	i.DashPressed = inpututil.IsKeyJustPressed(ebiten.KeyS) ||
		inpututil.IsKeyJustPressed(ebiten.KeyDown)

	// first connected gamepad: left stick X plus the standard primary button
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
			i.LeftHeld = true
		} else if leftX > 0.3 {
			moveX = 1
			i.RightHeld = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.JumpPressed = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft) {
			i.DashPressed = true
		}
	}

	i.MoveX = moveX

	i.ZoomOutPressed = inpututil.IsKeyJustPressed(ebiten.KeyMinus) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract)
	i.ZoomInPressed = inpututil.IsKeyJustPressed(ebiten.KeyEqual) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPAdd)

	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
