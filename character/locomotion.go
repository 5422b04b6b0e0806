package character

import "github.com/go-gl/mathgl/mgl32"

// MinMoveInput is the input length at or below which the player stays put.
const MinMoveInput float32 = 0.01

// Locomote runs the locomotion stage for one tick.
//
// It applies the lock toggle to camera, moves pose relative to the camera's
// current yaw and turns it towards the movement direction. The returned
// cursor options must be applied to the window every tick, whether or not the
// lock flag changed.
func Locomote(player *Player, pose *Pose, camera *OrbitCamera, in *Input, dt float32) CursorOptions {
	if in.ToggleLock {
		camera.IsLocked = !camera.IsLocked
	}
	cursor := camera.Cursor()

	move := in.moveVector()
	if move.Len() > 1 {
		move = move.Normalize()
	}
	if move.Len() <= MinMoveInput {
		return cursor
	}

	sin, cos := sincos(camera.Yaw)
	forward := mgl32.Vec3{sin, 0, cos}
	right := mgl32.Vec3{cos, 0, -sin}

	dir := forward.Mul(-move.Y()).Add(right.Mul(move.X())).Normalize()
	pose.Position = pose.Position.Add(dir.Mul(player.Speed * dt))

	// Unbounded factors overshoot on long frames.
	t := mgl32.Clamp(player.RotationSpeed*dt, 0, 1)
	pose.Rotation = slerp(pose.Rotation, Heading(dir), t)

	return cursor
}
