package phaseswap

import (
	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyW int = iota
	KeyA
	KeyS
	KeyD
	Key1
	Key2
	Key3
	KeyF1
	MouseButtonLeft
	MouseButtonRight
	keyCount
)

type InputModule struct{}

// Input is the per-tick device snapshot. It is written once in PreUpdate and
// only read afterwards.
type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	// Connected gamepads. Stick Y is positive up.
	Gamepads []character.Gamepad

	WindowWidth, WindowHeight int

	cursorSeeded bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

// setKey records the current state of key and derives the edge flags.
func (input *Input) setKey(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

// setCursor stores the cursor position and the motion since the last sample.
// The first sample only seeds the position.
func (input *Input) setCursor(x, y float64) {
	if input.cursorSeeded {
		input.MouseDeltaX = x - input.MouseX
		input.MouseDeltaY = y - input.MouseY
	} else {
		input.MouseDeltaX = 0
		input.MouseDeltaY = 0
		input.cursorSeeded = true
	}
	input.MouseX = x
	input.MouseY = y
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.setKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range mouseButtonToGlfw {
		input.setKey(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.setCursor(s.windowGlfw.GetCursorPos())
	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()
	input.Gamepads = pollGamepads(input.Gamepads[:0])
}

// pollGamepads appends a snapshot of every present joystick to pads.
// Joysticks without a gamepad mapping report only the axes they have.
func pollGamepads(pads []character.Gamepad) []character.Gamepad {
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if !joy.Present() {
			continue
		}

		if joy.IsGamepad() {
			if state := joy.GetGamepadState(); state != nil {
				pads = append(pads, gamepadFromAxes([]float32{
					state.Axes[glfw.AxisLeftX],
					state.Axes[glfw.AxisLeftY],
					state.Axes[glfw.AxisRightX],
					state.Axes[glfw.AxisRightY],
				}))
				continue
			}
		}
		pads = append(pads, gamepadFromAxes(joy.GetAxes()))
	}
	return pads
}

var stickAxisOrder = []character.GamepadAxis{
	character.LeftStickX,
	character.LeftStickY,
	character.RightStickX,
	character.RightStickY,
}

// gamepadFromAxes maps glfw axes (LX, LY, RX, RY, Y down) to a gamepad
// snapshot with Y up. Missing trailing axes stay unavailable.
func gamepadFromAxes(axes []float32) character.Gamepad {
	pad := character.Gamepad{Axes: make(map[character.GamepadAxis]float32, len(stickAxisOrder))}
	for i, axis := range stickAxisOrder {
		if i >= len(axes) {
			break
		}
		v := axes[i]
		if axis == character.LeftStickY || axis == character.RightStickY {
			v = -v
		}
		pad.Axes[axis] = v
	}
	return pad
}

var keyToGlfw = map[int]glfw.Key{
	KeyW:  glfw.KeyW,
	KeyA:  glfw.KeyA,
	KeyS:  glfw.KeyS,
	KeyD:  glfw.KeyD,
	Key1:  glfw.Key1,
	Key2:  glfw.Key2,
	Key3:  glfw.Key3,
	KeyF1: glfw.KeyF1,
}

var mouseButtonToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:  glfw.MouseButtonLeft,
	MouseButtonRight: glfw.MouseButtonRight,
}
