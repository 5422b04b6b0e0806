package character

import "github.com/go-gl/mathgl/mgl32"

// Orbit runs the camera-orbit stage for one tick and returns the camera pose.
//
// focus must be the player's position after Locomote ran this tick.
func Orbit(camera *OrbitCamera, focus mgl32.Vec3, in *Input, dt float32) Pose {
	camera.Focus = focus

	if camera.IsLocked && in.MouseDelta != (mgl32.Vec2{}) {
		camera.Yaw -= in.MouseDelta.X() * camera.Sensitivity
		camera.Pitch -= in.MouseDelta.Y() * camera.Sensitivity
	}

	for _, pad := range in.Gamepads {
		x := pad.axis(RightStickX)
		y := -pad.axis(RightStickY)
		if abs(x) > StickDeadzone {
			camera.Yaw += x * camera.GamepadSensitivity * dt
		}
		if abs(y) > StickDeadzone {
			camera.Pitch -= y * camera.GamepadSensitivity * dt
		}
	}

	camera.Pitch = mgl32.Clamp(camera.Pitch, camera.MinPitch, camera.MaxPitch)
	camera.Yaw = WrapAngle(camera.Yaw)

	return camera.Pose()
}

// Pose derives the camera's world pose from focus, yaw, pitch and radius.
func (c *OrbitCamera) Pose() Pose {
	rotation := mgl32.QuatRotate(c.Yaw, worldUp).Mul(mgl32.QuatRotate(c.Pitch, worldRight))
	offset := rotation.Rotate(mgl32.Vec3{0, 0, -c.Radius})
	position := c.Focus.Add(offset)

	return Pose{
		Position: position,
		Rotation: LookAt(position, c.Focus, worldUp),
	}
}
