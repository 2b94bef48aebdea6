package meshes

import (
	"fmt"
	"path/filepath"

	"stillscene/logging"
)

// Kind is one of the primitive shapes the scene can draw.
type Kind int

const (
	Kind_Unknown Kind = iota
	Kind_Box
	Kind_Plane
	Kind_Cylinder
	Kind_Cone
	Kind_Prism
	Kind_Pyramid4
	Kind_Sphere
	Kind_TaperedCylinder
	Kind_Torus
)

var allKinds = [...]Kind{
	Kind_Box, Kind_Plane, Kind_Cylinder, Kind_Cone, Kind_Prism,
	Kind_Pyramid4, Kind_Sphere, Kind_TaperedCylinder, Kind_Torus,
}

func AllKinds() []Kind {
	return allKinds[:]
}

func (k Kind) String() string {

	switch k {
	case Kind_Box:
		return "box"
	case Kind_Plane:
		return "plane"
	case Kind_Cylinder:
		return "cylinder"
	case Kind_Cone:
		return "cone"
	case Kind_Prism:
		return "prism"
	case Kind_Pyramid4:
		return "pyramid4"
	case Kind_Sphere:
		return "sphere"
	case Kind_TaperedCylinder:
		return "tapered-cylinder"
	case Kind_Torus:
		return "torus"

	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Drawer issues the actual draw call for an uploaded mesh.
// renderer.Render satisfies it.
type Drawer interface {
	DrawMesh(mesh *Mesh)
}

// ShapeBank owns one uploaded instance of each primitive shape for the
// process lifetime. Each kind is imported from '<modelDir>/<kind>.obj'
// exactly once no matter how many times it is drawn.
type ShapeBank struct {
	drawer   Drawer
	modelDir string
	meshes   map[Kind]*Mesh
}

func NewShapeBank(drawer Drawer, modelDir string) *ShapeBank {

	return &ShapeBank{
		drawer:   drawer,
		modelDir: modelDir,
		meshes:   make(map[Kind]*Mesh, len(allKinds)),
	}
}

// Load imports and uploads the mesh for kind. Loading an already loaded kind
// is a no-op.
func (s *ShapeBank) Load(kind Kind) error {

	if _, ok := s.meshes[kind]; ok {
		return nil
	}

	mesh, err := NewMesh(kind.String(), filepath.Join(s.modelDir, kind.String()+".obj"))
	if err != nil {
		return fmt.Errorf("failed to load %s mesh: %w", kind, err)
	}

	s.meshes[kind] = &mesh
	return nil
}

func (s *ShapeBank) LoadAll() error {

	for _, k := range allKinds {
		if err := s.Load(k); err != nil {
			return err
		}
	}

	return nil
}

// Draw draws the mesh for kind with whatever shader state is currently
// pushed. A kind that was never loaded degrades to a logged no-op.
func (s *ShapeBank) Draw(kind Kind) {

	mesh, ok := s.meshes[kind]
	if !ok {
		logging.ErrLog.Printf("Draw of unloaded mesh kind '%s' skipped\n", kind)
		return
	}

	s.drawer.DrawMesh(mesh)
}

func (s *ShapeBank) Destroy() {

	for _, mesh := range s.meshes {
		mesh.Delete()
	}
	s.meshes = make(map[Kind]*Mesh, len(allKinds))
}
