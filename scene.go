package phaseswap

import (
	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneDef defines the initial state of the scene.
type SceneDef struct {
	Player PlayerDef
	Camera character.OrbitCamera
	Props  []PropDef
	Lights []LightDef
}

type PlayerDef struct {
	Player   character.Player
	Position mgl32.Vec3
	Color    [3]float32
}

// PropDef is a static mesh in the scene.
type PropDef struct {
	Mesh     MeshAsset
	Position mgl32.Vec3
	Color    [3]float32
}

type LightDef struct {
	Light    LightComponent
	Position mgl32.Vec3
}

// DefaultScene is the player on a 20x20 baseplate next to a reference cube,
// lit by one point light.
func DefaultScene(cfg Config) SceneDef {
	return SceneDef{
		Player: PlayerDef{
			Player:   cfg.Player.Player(),
			Position: mgl32.Vec3{0, cfg.Player.SpawnHeight, 0},
			Color:    [3]float32{0.8, 0.7, 0.6},
		},
		Camera: cfg.Camera.OrbitCamera(),
		Props: []PropDef{
			{
				Mesh:  MeshAsset{Shape: MeshCuboid, Params: []float32{1, 1, 1}},
				Color: [3]float32{0.1, 0.1, 0.1},
			},
			{
				Mesh:  MeshAsset{Shape: MeshPlane, Params: []float32{20, 20}},
				Color: [3]float32{0.3, 0.5, 0.3},
			},
		},
		Lights: []LightDef{
			{
				Light: LightComponent{
					Type:           LightTypePoint,
					Color:          [3]float32{1, 1, 1},
					Intensity:      1,
					Range:          20,
					ShadowsEnabled: true,
				},
				Position: mgl32.Vec3{4, 8, 4},
			},
		},
	}
}

// SceneModule spawns the scene and registers the player mesh swap. It needs
// the AssetServer resource and must be installed after CharacterModule so the
// swap runs after the camera.
type SceneModule struct {
	Scene SceneDef
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	server, ok := Resource[AssetServer](app)
	if !ok {
		panic("SceneModule requires AssetServerModule")
	}

	meshes := &PlayerMeshes{
		Cube:     server.Cuboid(1, 1, 1),
		Sphere:   server.Sphere(0.5, 5),
		Cylinder: server.Cylinder(0.5, 1),
	}
	cmd.AddResources(meshes)

	spawned := SpawnScene(cmd, server, meshes, m.Scene)
	app.Logger().Infof("scene spawned: player=%d camera=%d props=%d lights=%d",
		spawned.Player, spawned.Camera, len(m.Scene.Props), len(m.Scene.Lights))

	app.UseSystem(System(PlayerMeshSwapSystem).InStage(Update).RunAlways())
}

// SpawnedScene holds the ids of the singleton entities.
type SpawnedScene struct {
	Player EntityId
	Camera EntityId
}

// SpawnScene queues the scene's entities. They exist after the next flush.
func SpawnScene(cmd *Commands, server *AssetServer, meshes *PlayerMeshes, def SceneDef) SpawnedScene {
	p := def.Player
	playerTr := NewTransform(p.Position.X(), p.Position.Y(), p.Position.Z())
	player := cmd.AddEntity(
		&MeshComponent{Mesh: meshes.Cube},
		&MaterialComponent{Material: server.AddMaterial(p.Color[0], p.Color[1], p.Color[2])},
		playerTr,
		&PlayerComponent{Player: p.Player},
	)

	for _, prop := range def.Props {
		cmd.AddEntity(
			&MeshComponent{Mesh: server.AddMesh(prop.Mesh)},
			&MaterialComponent{Material: server.AddMaterial(prop.Color[0], prop.Color[1], prop.Color[2])},
			NewTransform(prop.Position.X(), prop.Position.Y(), prop.Position.Z()),
		)
	}

	for _, light := range def.Lights {
		lc := light.Light
		cmd.AddEntity(
			&lc,
			NewTransform(light.Position.X(), light.Position.Y(), light.Position.Z()),
		)
	}

	// The camera pose is derived on the first orbit tick; start it in place
	// so it is valid before then.
	cam := def.Camera
	cam.Focus = p.Position
	camTr := NewTransform(0, 0, 0)
	camTr.SetPose(cam.Pose())
	camera := cmd.AddEntity(
		&OrbitCameraComponent{Camera: cam},
		camTr,
	)

	return SpawnedScene{Player: player, Camera: camera}
}
