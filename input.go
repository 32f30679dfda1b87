package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ecs/system"
)

const (
	stickDeadzone = 0.2
	stickReach    = 200
)

var slotKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// Input samples keyboard, mouse and the first gamepad once per tick and
// hands the result to the protagonist as an intent.
type Input struct {
	camera *Camera
	intent component.Intent
	// screen-space aim; gamepad aim is relative to the protagonist instead
	cursorX, cursorY float64
	stickX, stickY   float64
	stickAim         bool
	cycle            bool
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera, intent: component.Idle()}
}

func (i *Input) Update() {
	in := component.Idle()

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MovingDir--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MovingDir++
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW)
	in.Dash = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.QuickMelee = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	for slot, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Slot = slot
		}
	}

	cx, cy := ebiten.CursorPosition()
	i.cursorX, i.cursorY = float64(cx), float64(cy)
	i.stickAim, i.cycle = false, false

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		if x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); math.Abs(x) > stickDeadzone {
			in.MovingDir = int(math.Copysign(1, x))
		}
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Dash = in.Dash || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.QuickMelee = in.QuickMelee || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		i.cycle = inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			i.stickX, i.stickY, i.stickAim = rx, ry, true
		}
	}

	i.intent = in
}

// Hook writes the sampled intent into the protagonist, resolving the aim
// point into world space.
func (i *Input) Hook() system.IntentHook {
	return func(w *ecs.World, e ecs.Entity, a *component.Actor) {
		in := i.intent
		if i.stickAim {
			in.AimX = a.CenterX() + i.stickX*stickReach
			in.AimY = a.CenterY() + i.stickY*stickReach
		} else {
			in.AimX, in.AimY = i.camera.ToWorld(i.cursorX, i.cursorY)
		}
		in.HasAim = true
		if i.cycle && len(a.Slots) > 0 {
			in.Slot = (a.CurrentSlot + 1) % len(a.Slots)
		}
		a.Intent = in
	}
}
