package phaseswap

import (
	"fmt"

	"github.com/google/uuid"
)

type AssetId string

type MeshShape int

const (
	MeshCuboid MeshShape = iota
	MeshSphere
	MeshCylinder
	MeshPlane
)

func (s MeshShape) String() string {
	switch s {
	case MeshCuboid:
		return "cuboid"
	case MeshSphere:
		return "sphere"
	case MeshCylinder:
		return "cylinder"
	case MeshPlane:
		return "plane"
	}
	return fmt.Sprintf("MeshShape(%d)", int(s))
}

// MeshAsset is a procedural mesh descriptor. Geometry is generated by the
// renderer, not here.
type MeshAsset struct {
	Shape  MeshShape
	Params []float32
	// Subdivisions is the icosphere level for spheres.
	Subdivisions int
}

type MaterialAsset struct {
	Color [3]float32
}

type AssetServer struct {
	meshes    map[AssetId]MeshAsset
	materials map[AssetId]MaterialAsset
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(NewAssetServer())
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:    make(map[AssetId]MeshAsset),
		materials: make(map[AssetId]MaterialAsset),
	}
}

func (server *AssetServer) AddMesh(mesh MeshAsset) AssetId {
	id := makeAssetId()
	server.meshes[id] = mesh
	return id
}

func (server *AssetServer) Cuboid(x, y, z float32) AssetId {
	return server.AddMesh(MeshAsset{Shape: MeshCuboid, Params: []float32{x, y, z}})
}

func (server *AssetServer) Sphere(radius float32, subdivisions int) AssetId {
	return server.AddMesh(MeshAsset{Shape: MeshSphere, Params: []float32{radius}, Subdivisions: subdivisions})
}

func (server *AssetServer) Cylinder(radius, height float32) AssetId {
	return server.AddMesh(MeshAsset{Shape: MeshCylinder, Params: []float32{radius, height}})
}

func (server *AssetServer) Plane(width, depth float32) AssetId {
	return server.AddMesh(MeshAsset{Shape: MeshPlane, Params: []float32{width, depth}})
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

func (server *AssetServer) AddMaterial(r, g, b float32) AssetId {
	id := makeAssetId()
	server.materials[id] = MaterialAsset{Color: [3]float32{r, g, b}}
	return id
}

func (server *AssetServer) Material(id AssetId) (MaterialAsset, bool) {
	mat, ok := server.materials[id]
	return mat, ok
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
