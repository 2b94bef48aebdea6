// Package materials holds the tag-addressed registry of Phong material
// property bundles pushed into the scene shader per draw.
package materials

import "github.com/bloeys/gglm/gglm"

type Material struct {
	Tag string

	AmbientColor    gglm.Vec3
	AmbientStrength float32
	DiffuseColor    gglm.Vec3
	SpecularColor   gglm.Vec3
	Shininess       float32
}

type Registry struct {
	materials []Material
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Define appends the material. Tags are not checked for uniqueness; a
// duplicate tag shadows every later entry with the same tag.
func (r *Registry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material defined under tag. When no entry matches,
// the returned material is the zero value and found is false, regardless of
// what else the registry holds.
func (r *Registry) Find(tag string) (m Material, found bool) {

	for i := 0; i < len(r.materials); i++ {
		if r.materials[i].Tag == tag {
			return r.materials[i], true
		}
	}

	return Material{}, false
}

func (r *Registry) Len() int {
	return len(r.materials)
}

func (r *Registry) Clear() {
	r.materials = nil
}
