package systems

import (
	"strings"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// lookPerPixel converts cursor travel into look-axis units.
const lookPerPixel = 0.1

// cursorCapturer is implemented by sources that own a real cursor.
type cursorCapturer interface {
	SetCaptured(captured bool)
}

// UpdateInput polls the session's devices and builds this step's frame.
// Must run BEFORE every gameplay system.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	if input.Actions != nil {
		if method, used := input.Actions.PollActions(&input.Current); used {
			input.LastInputMethod = method
		}
	}

	var sample character.InputSample
	if input.Source != nil {
		sample = input.Source.Sample()
	}
	if !gamemath.ValidStep(StepDT(ecs)) {
		// Nothing runs this step; keep the edges for the next one.
		input.Tracker.Defer(sample)
		input.Frame = character.InputFrame{}
		return
	}
	input.Frame = input.Tracker.Next(sample)

	if input.Frame.ToggleCursor.JustPressed {
		input.CursorCaptured = !input.CursorCaptured
		if c, ok := input.Source.(cursorCapturer); ok {
			c.SetCaptured(input.CursorCaptured)
		}
	}
	if !input.CursorCaptured {
		input.Frame.Look = gamemath.Vec2{}
	}
}

// KeyboardMouse reads the configured bindings from the keyboard and standard
// gamepads, and look from the mouse or the right stick.
type KeyboardMouse struct {
	gamepadIDs      []ebiten.GamepadID
	controllerTypes map[ebiten.GamepadID]components.InputMethod

	actions    [cfg.ActionCount]bool
	cursor     gamemath.Vec2
	haveCursor bool
}

func NewKeyboardMouse() *KeyboardMouse {
	return &KeyboardMouse{
		controllerTypes: make(map[ebiten.GamepadID]components.InputMethod),
	}
}

// PollActions marks every bound action that is held and reports the device
// that was used, if any.
func (k *KeyboardMouse) PollActions(into *[cfg.ActionCount]bool) (components.InputMethod, bool) {
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				into[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range k.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					into[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		return k.controllerType(activeGamepadID), true
	}
	return components.InputKeyboard, keyboardUsed
}

// Sample implements character.InputSource.
func (k *KeyboardMouse) Sample() character.InputSample {
	k.actions = [cfg.ActionCount]bool{}
	k.PollActions(&k.actions)

	s := character.InputSample{
		Run:          k.actions[cfg.ActionRun],
		Jump:         k.actions[cfg.ActionJump],
		Interact:     k.actions[cfg.ActionInteract],
		ToggleCursor: k.actions[cfg.ActionToggleCursor],
	}
	s.Move.X = axis(k.actions[cfg.ActionMoveLeft], k.actions[cfg.ActionMoveRight])
	s.Move.Y = axis(k.actions[cfg.ActionMoveBack], k.actions[cfg.ActionMoveForward])

	x, y := ebiten.CursorPosition()
	cursor := gamemath.Vec2{X: float64(x), Y: float64(y)}
	if k.haveCursor {
		// Screen Y grows downward, look Y grows upward.
		s.Look.X = (cursor.X - k.cursor.X) * lookPerPixel
		s.Look.Y = -(cursor.Y - k.cursor.Y) * lookPerPixel
	}
	k.cursor, k.haveCursor = cursor, true

	k.mergeSticks(&s)
	return s
}

// SetCaptured locks or frees the OS cursor.
func (k *KeyboardMouse) SetCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	// The cursor jumps when the mode changes.
	k.haveCursor = false
}

// mergeSticks overrides digital movement with the left stick and adds the
// right stick to mouse look.
func (k *KeyboardMouse) mergeSticks(s *character.InputSample) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if (gamemath.Vec2{X: lx, Y: ly}).Length() > deadzone {
			s.Move = gamemath.Vec2{X: lx, Y: -ly}
		}

		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if (gamemath.Vec2{X: rx, Y: ry}).Length() > deadzone {
			s.Look.X += rx * cfg.Input.GamepadLookSpeed
			s.Look.Y -= ry * cfg.Input.GamepadLookSpeed
		}
	}
}

// controllerType returns the cached controller type, detecting on first access
func (k *KeyboardMouse) controllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := k.controllerTypes[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	k.controllerTypes[gpID] = method
	return method
}

func axis(negative, positive bool) float64 {
	var v float64
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
