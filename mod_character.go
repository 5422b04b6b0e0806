package phaseswap

import (
	"fmt"

	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/mathgl/mgl32"
)

type LockToggleMode int

const (
	// LockToggleHeld flips the camera lock on every tick the key is down.
	LockToggleHeld LockToggleMode = iota
	// LockToggleOnPress flips it once per key press.
	LockToggleOnPress
)

func (m LockToggleMode) String() string {
	switch m {
	case LockToggleHeld:
		return "held"
	case LockToggleOnPress:
		return "press"
	}
	return fmt.Sprintf("LockToggleMode(%d)", int(m))
}

func ParseLockToggleMode(s string) (LockToggleMode, error) {
	switch s {
	case "held", "":
		return LockToggleHeld, nil
	case "press":
		return LockToggleOnPress, nil
	}
	return 0, fmt.Errorf("%w: unknown lock toggle mode %q", ErrInvalidConfig, s)
}

type Controls struct {
	LockToggle LockToggleMode
}

// CharacterModule runs the controller every tick in Update: input snapshot,
// locomotion, then camera orbit. The order is the registration order.
type CharacterModule struct {
	Controls Controls
}

func (m CharacterModule) Install(app *App, cmd *Commands) {
	controls := m.Controls
	cmd.AddResources(&controls, &character.Input{})
	if !app.hasResource(&character.CursorOptions{}) {
		cmd.AddResources(&character.CursorOptions{Visible: true})
	}

	app.UseSystem(System(ControllerInputSystem).InStage(Update).RunAlways())
	app.UseSystem(System(PlayerLocomotionSystem).InStage(Update).RunAlways())
	app.UseSystem(System(CameraOrbitSystem).InStage(Update).RunAlways())
}

// ControllerInputSystem copies this tick's device state into the controller snapshot.
func ControllerInputSystem(input *Input, controls *Controls, snapshot *character.Input) {
	toggle := input.Pressed[KeyF1]
	if controls.LockToggle == LockToggleOnPress {
		toggle = input.JustPressed[KeyF1]
	}

	*snapshot = character.Input{
		Forward:    input.Pressed[KeyW],
		Back:       input.Pressed[KeyS],
		Left:       input.Pressed[KeyA],
		Right:      input.Pressed[KeyD],
		ToggleLock: toggle,
		MouseDelta: mgl32.Vec2{float32(input.MouseDeltaX), float32(input.MouseDeltaY)},
		Gamepads:   input.Gamepads,
	}
}

// PlayerLocomotionSystem skips the tick unless exactly one player and one
// orbit camera exist.
func PlayerLocomotionSystem(cmd *Commands, snapshot *character.Input, time *Time, cursor *character.CursorOptions) {
	_, player, tr, ok := MakeQuery2[PlayerComponent, TransformComponent](cmd).Single()
	if !ok {
		return
	}
	_, cam, ok := MakeQuery1[OrbitCameraComponent](cmd).Single()
	if !ok {
		return
	}

	wasLocked := cam.Camera.IsLocked
	pose := tr.Pose()
	*cursor = character.Locomote(&player.Player, &pose, &cam.Camera, snapshot, time.DeltaSeconds())
	tr.SetPose(pose)

	if wasLocked != cam.Camera.IsLocked {
		cmd.Logger().Debugf("camera lock %v, cursor visible=%v grab=%v", cam.Camera.IsLocked, cursor.Visible, cursor.GrabMode)
	}
}

// CameraOrbitSystem skips the tick unless exactly one player and one orbit
// camera exist.
func CameraOrbitSystem(cmd *Commands, snapshot *character.Input, time *Time) {
	_, cam, camTr, ok := MakeQuery2[OrbitCameraComponent, TransformComponent](cmd).Single()
	if !ok {
		return
	}
	_, _, playerTr, ok := MakeQuery2[PlayerComponent, TransformComponent](cmd).Single()
	if !ok {
		return
	}

	camTr.SetPose(character.Orbit(&cam.Camera, playerTr.Position, snapshot, time.DeltaSeconds()))
}

// PlayerMeshes are the shapes the player can switch between with 1, 2 and 3.
type PlayerMeshes struct {
	Cube     AssetId
	Sphere   AssetId
	Cylinder AssetId
}

func PlayerMeshSwapSystem(cmd *Commands, input *Input, meshes *PlayerMeshes) {
	_, _, mesh, ok := MakeQuery2[PlayerComponent, MeshComponent](cmd).Single()
	if !ok {
		return
	}

	var next AssetId
	switch {
	case input.JustPressed[Key1]:
		next = meshes.Cube
	case input.JustPressed[Key2]:
		next = meshes.Sphere
	case input.JustPressed[Key3]:
		next = meshes.Cylinder
	default:
		return
	}

	if mesh.Mesh != next {
		cmd.Logger().Debugf("player mesh %s -> %s", mesh.Mesh, next)
		mesh.Mesh = next
	}
}
