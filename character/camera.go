package character

import "github.com/go-gl/mathgl/mgl32"

// OrbitCamera is the follow camera's controller state. Angles are radians.
type OrbitCamera struct {
	Focus              mgl32.Vec3
	Radius             float32
	Yaw                float32
	Pitch              float32
	Sensitivity        float32
	GamepadSensitivity float32
	MinPitch           float32
	MaxPitch           float32

	// Zoom limits. Radius stays constant for now.
	MinRadius float32
	MaxRadius float32
	ZoomSpeed float32

	IsLocked bool
}

func DefaultOrbitCamera() OrbitCamera {
	return OrbitCamera{
		Radius:             8.0,
		Pitch:              mgl32.DegToRad(20),
		Sensitivity:        0.002,
		GamepadSensitivity: 2.0,
		MinPitch:           mgl32.DegToRad(-80),
		MaxPitch:           mgl32.DegToRad(80),
		MinRadius:          5.0,
		MaxRadius:          20.0,
		ZoomSpeed:          1.0,
		IsLocked:           true,
	}
}

type CursorGrabMode int

const (
	CursorGrabNone CursorGrabMode = iota
	CursorGrabLocked
)

func (m CursorGrabMode) String() string {
	switch m {
	case CursorGrabLocked:
		return "locked"
	default:
		return "none"
	}
}

// CursorOptions is what the windowing layer should do with the system cursor.
type CursorOptions struct {
	Visible  bool
	GrabMode CursorGrabMode
}

// Cursor returns the cursor options matching the lock flag.
func (c *OrbitCamera) Cursor() CursorOptions {
	if c.IsLocked {
		return CursorOptions{Visible: false, GrabMode: CursorGrabLocked}
	}
	return CursorOptions{Visible: true, GrabMode: CursorGrabNone}
}
