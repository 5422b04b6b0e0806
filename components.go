package phaseswap

import (
	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/mathgl/mgl32"
)

type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform(x, y, z float32) *TransformComponent {
	return &TransformComponent{
		Position: mgl32.Vec3{x, y, z},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *TransformComponent) Pose() character.Pose {
	return character.Pose{Position: t.Position, Rotation: t.Rotation}
}

func (t *TransformComponent) SetPose(p character.Pose) {
	t.Position = p.Position
	t.Rotation = p.Rotation
}

// PlayerComponent marks the controllable character.
type PlayerComponent struct {
	Player character.Player
}

// OrbitCameraComponent marks the follow camera. Its TransformComponent is
// derived from the orbit state every tick.
type OrbitCameraComponent struct {
	Camera character.OrbitCamera
}

type MeshComponent struct {
	Mesh AssetId
}

type MaterialComponent struct {
	Material AssetId
}
