package character

import "github.com/go-gl/mathgl/mgl32"

// Player holds the locomotion constants of the controllable character.
type Player struct {
	Speed         float32 // world units per second
	RotationSpeed float32 // slerp factor per second
}

func DefaultPlayer() Player {
	return Player{
		Speed:         5.0,
		RotationSpeed: 10.0,
	}
}

// Pose is a world position and orientation.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func NewPose(x, y, z float32) Pose {
	return Pose{
		Position: mgl32.Vec3{x, y, z},
		Rotation: mgl32.QuatIdent(),
	}
}
