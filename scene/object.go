package scene

import (
	"stillscene/meshes"

	"github.com/bloeys/gglm/gglm"
)

// ObjectDesc describes one drawable instance of the scene: a primitive mesh
// kind, its composed transform parameters and the tags of the material and
// texture to dispatch before its draw call. The ordered ObjectDesc list is
// the whole scene; Builder.Render walks it front to back every frame.
type ObjectDesc struct {
	Name string
	Mesh meshes.Kind

	Scale       gglm.Vec3
	RotationDeg gglm.Vec3
	Position    gglm.Vec3

	MaterialTag string
	TextureTag  string

	// Color, when set, is pushed before the material/texture state.
	// Texturing is re-enabled afterwards if TextureTag resolves.
	Color *gglm.Vec4

	// UVScale, when set, overrides the shader's default UV scale of (1,1).
	UVScale *gglm.Vec2
}
