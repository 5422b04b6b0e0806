package character

import "github.com/go-gl/mathgl/mgl32"

// StickDeadzone is the magnitude at or below which a stick axis is ignored.
const StickDeadzone float32 = 0.1

type GamepadAxis int

const (
	LeftStickX GamepadAxis = iota
	LeftStickY
	RightStickX
	RightStickY
)

func (a GamepadAxis) String() string {
	switch a {
	case LeftStickX:
		return "LeftStickX"
	case LeftStickY:
		return "LeftStickY"
	case RightStickX:
		return "RightStickX"
	case RightStickY:
		return "RightStickY"
	}
	return "Unknown"
}

// Gamepad is a snapshot of one connected gamepad. Stick Y is positive up.
type Gamepad struct {
	Axes map[GamepadAxis]float32
}

// Get returns the axis value and whether the pad reports that axis at all.
func (g Gamepad) Get(axis GamepadAxis) (float32, bool) {
	v, ok := g.Axes[axis]
	return v, ok
}

func (g Gamepad) axis(axis GamepadAxis) float32 {
	v, ok := g.Get(axis)
	if !ok {
		return 0
	}
	return v
}

// Input is the per-tick input snapshot consumed by both stages.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// ToggleLock flips OrbitCamera.IsLocked when set.
	ToggleLock bool

	MouseDelta mgl32.Vec2
	Gamepads   []Gamepad
}

// moveVector combines keys and left sticks into the raw 2D move input.
func (in *Input) moveVector() mgl32.Vec2 {
	var v mgl32.Vec2
	if in.Forward {
		v[1] -= 1
	}
	if in.Back {
		v[1] += 1
	}
	if in.Left {
		v[0] += 1
	}
	if in.Right {
		v[0] -= 1
	}

	for _, pad := range in.Gamepads {
		x := pad.axis(LeftStickX)
		y := -pad.axis(LeftStickY)
		if abs(x) > StickDeadzone {
			v[0] -= x
		}
		if abs(y) > StickDeadzone {
			v[1] += y
		}
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
