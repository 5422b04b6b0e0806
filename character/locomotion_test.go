package character

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v", i, actual)
	}
}

func TestLocomote_ForwardAtZeroYaw(t *testing.T) {
	player := DefaultPlayer()
	pose := NewPose(0, 0.5, 0)
	camera := DefaultOrbitCamera()
	in := Input{Forward: true}

	Locomote(&player, &pose, &camera, &in, 1.0)

	assert.Equal(t, mgl32.Vec3{0, 0.5, 5.0}, pose.Position)
	assert.True(t, camera.IsLocked)
}

func TestLocomote_DeadInputLeavesPoseUntouched(t *testing.T) {
	player := DefaultPlayer()
	pose := Pose{
		Position: mgl32.Vec3{1.25, 0.5, -3},
		Rotation: mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}),
	}
	before := pose
	camera := DefaultOrbitCamera()

	cases := []struct {
		name string
		in   Input
	}{
		{"no input", Input{}},
		{"opposing keys", Input{Forward: true, Back: true, Left: true, Right: true}},
		{"sticks inside deadzone", Input{Gamepads: []Gamepad{{Axes: map[GamepadAxis]float32{LeftStickX: 0.1, LeftStickY: -0.05}}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Locomote(&player, &pose, &camera, &c.in, 0.016)
			assert.Equal(t, before, pose)
		})
	}
}

func TestLocomote_DiagonalInputIsCapped(t *testing.T) {
	player := DefaultPlayer()
	pose := NewPose(0, 0, 0)
	camera := DefaultOrbitCamera()
	camera.Yaw = 1.1
	in := Input{Forward: true, Left: true}

	dt := float32(0.5)
	Locomote(&player, &pose, &camera, &in, dt)

	assert.InDelta(t, player.Speed*dt, pose.Position.Len(), 1e-5)
	assert.Equal(t, float32(0), pose.Position.Y())
}

func TestLocomote_AnalogMagnitudeBelowOneIsKept(t *testing.T) {
	player := DefaultPlayer()
	pose := NewPose(0, 0, 0)
	camera := DefaultOrbitCamera()
	in := Input{Gamepads: []Gamepad{{Axes: map[GamepadAxis]float32{LeftStickY: 0.5}}}}

	Locomote(&player, &pose, &camera, &in, 1.0)

	// Direction is normalized, only the dead-input check sees the magnitude.
	assertVec3InDelta(t, mgl32.Vec3{0, 0, player.Speed}, pose.Position, 1e-5)
}

func TestLocomote_IsCameraRelative(t *testing.T) {
	player := DefaultPlayer()
	camera := DefaultOrbitCamera()
	camera.Yaw = math.Pi / 2

	cases := []struct {
		name     string
		in       Input
		expected mgl32.Vec3
	}{
		{"forward", Input{Forward: true}, mgl32.Vec3{1, 0, 0}},
		{"back", Input{Back: true}, mgl32.Vec3{-1, 0, 0}},
		{"left", Input{Left: true}, mgl32.Vec3{0, 0, -1}},
		{"right", Input{Right: true}, mgl32.Vec3{0, 0, 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pose := NewPose(0, 0, 0)
			Locomote(&player, &pose, &camera, &c.in, 0.2)
			assertVec3InDelta(t, c.expected, pose.Position, 1e-5)
		})
	}
}

func TestLocomote_StickSigns(t *testing.T) {
	player := DefaultPlayer()
	camera := DefaultOrbitCamera()

	pose := NewPose(0, 0, 0)
	in := Input{Gamepads: []Gamepad{{Axes: map[GamepadAxis]float32{LeftStickY: 1}}}}
	Locomote(&player, &pose, &camera, &in, 0.2)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, pose.Position, 1e-5)

	// stick right behaves like D
	pose = NewPose(0, 0, 0)
	in = Input{Gamepads: []Gamepad{{Axes: map[GamepadAxis]float32{LeftStickX: 1}}}}
	Locomote(&player, &pose, &camera, &in, 0.2)
	assertVec3InDelta(t, mgl32.Vec3{-1, 0, 0}, pose.Position, 1e-5)
}

func TestLocomote_GamepadsAccumulate(t *testing.T) {
	in := Input{
		Left: true,
		Gamepads: []Gamepad{
			{Axes: map[GamepadAxis]float32{LeftStickX: 0.3}},
			{Axes: map[GamepadAxis]float32{LeftStickX: 0.2, LeftStickY: 0.4}},
			{Axes: map[GamepadAxis]float32{}},
		},
	}

	v := in.moveVector()
	assert.InDelta(t, 0.5, v.X(), 1e-6)
	assert.InDelta(t, -0.4, v.Y(), 1e-6)
}

func TestLocomote_TurnsTowardsMovement(t *testing.T) {
	player := DefaultPlayer()
	camera := DefaultOrbitCamera()
	pose := NewPose(0, 0, 0)
	in := Input{Right: true}

	// rotationSpeed*dt > 1 is clamped, so one tick reaches the target heading.
	Locomote(&player, &pose, &camera, &in, 0.5)

	require.InDelta(t, 1.0, pose.Rotation.Len(), 1e-5)
	facing := pose.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	assertVec3InDelta(t, mgl32.Vec3{-1, 0, 0}, facing, 1e-4)
}

func TestLocomote_PartialTurn(t *testing.T) {
	player := DefaultPlayer()
	camera := DefaultOrbitCamera()
	pose := NewPose(0, 0, 0)
	in := Input{Left: true}

	Locomote(&player, &pose, &camera, &in, 0.01)

	target := Heading(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 1.0, pose.Rotation.Len(), 1e-5)
	assert.False(t, pose.Rotation.ApproxEqualThreshold(target, 1e-3))
	assert.False(t, pose.Rotation.ApproxEqualThreshold(mgl32.QuatIdent(), 1e-3))
}

func TestLocomote_LockToggle(t *testing.T) {
	player := DefaultPlayer()
	pose := NewPose(0, 0.5, 0)
	camera := DefaultOrbitCamera()
	require.True(t, camera.IsLocked)

	held := Input{ToggleLock: true}
	cursor := Locomote(&player, &pose, &camera, &held, 0.016)
	assert.False(t, camera.IsLocked)
	assert.Equal(t, CursorOptions{Visible: true, GrabMode: CursorGrabNone}, cursor)

	// holding the key keeps flipping every tick
	for i := 2; i <= 5; i++ {
		Locomote(&player, &pose, &camera, &held, 0.016)
		assert.Equal(t, i%2 == 0, camera.IsLocked, "tick %d", i)
	}

	released := Input{}
	cursor = Locomote(&player, &pose, &camera, &released, 0.016)
	assert.False(t, camera.IsLocked)
	assert.Equal(t, CursorOptions{Visible: true, GrabMode: CursorGrabNone}, cursor)
}

func TestLocomote_CursorReappliedWithoutToggle(t *testing.T) {
	player := DefaultPlayer()
	pose := NewPose(0, 0, 0)
	camera := DefaultOrbitCamera()

	cursor := Locomote(&player, &pose, &camera, &Input{}, 0.016)
	assert.Equal(t, CursorOptions{Visible: false, GrabMode: CursorGrabLocked}, cursor)
}
