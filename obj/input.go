package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// View maps world units onto screen pixels.
type View struct {
	// PixelsPerUnit scales world units to pixels.
	PixelsPerUnit float64
	// Origin is the world point drawn at the top-left of the screen.
	Origin cp.Vector
}

func (v View) scale() float64 {
	if v.PixelsPerUnit <= 0 {
		return 1
	}
	return v.PixelsPerUnit
}

func (v View) ScreenToWorld(x, y float64) cp.Vector {
	s := v.scale()
	return cp.Vector{X: v.Origin.X + x/s, Y: v.Origin.Y + y/s}
}

func (v View) WorldToScreen(p cp.Vector) (float64, float64) {
	s := v.scale()
	return (p.X - v.Origin.X) * s, (p.Y - v.Origin.Y) * s
}

// TriggerSample is one frame of weapon trigger input.
type TriggerSample struct {
	Triggered bool
	Aim       cp.Vector
}

// Input holds the current frame's sandbox input.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// Trigger is the swing request with the cursor in world coordinates.
	Trigger TriggerSample
	// ToggleEquip flips between world and inventory modes.
	ToggleEquip bool
	SavePressed bool
	LoadPressed bool
	// HurtPressed applies test damage to the player.
	HurtPressed  bool
	HealPressed  bool
	DebugPressed bool

	view View
}

func NewInput(view View) *Input {
	return &Input{view: view}
}

// Update polls keyboard, mouse and the first gamepad.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	aim := i.view.ScreenToWorld(float64(mx), float64(my))

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	var gpFire bool
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		gpFire = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	i.MoveX = moveX
	i.Trigger = TriggerSample{
		Triggered: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || gpFire,
		Aim:       aim,
	}
	i.ToggleEquip = inpututil.IsKeyJustPressed(ebiten.KeyI)
	i.SavePressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	i.LoadPressed = inpututil.IsKeyJustPressed(ebiten.KeyF9)
	i.HurtPressed = inpututil.IsKeyJustPressed(ebiten.KeyH)
	i.HealPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
