package scene

import (
	"stillscene/assert"
	"stillscene/logging"
	"stillscene/materials"
	"stillscene/shaders"
	"stillscene/textures"

	"github.com/bloeys/gglm/gglm"
)

// ProgramWriter is the slice of shaders.ShaderProgram the dispatcher needs.
// Every call is an immediate uniform write against the program; nothing is
// queued, so all state for a draw must be dispatched before its draw call.
type ProgramWriter interface {
	SetUnifBool(uniformName string, val bool)
	SetUnifInt32(uniformName string, val int32)
	SetUnifFloat32(uniformName string, val float32)
	SetUnifVec2(uniformName string, vec2 *gglm.Vec2)
	SetUnifVec3(uniformName string, vec3 *gglm.Vec3)
	SetUnifVec4(uniformName string, vec4 *gglm.Vec4)
	SetUnifMat4(uniformName string, mat4 *gglm.Mat4)
}

// StateDispatcher resolves tags against the texture and material registries
// and pushes the resulting shader state as named uniforms.
type StateDispatcher struct {
	prog      ProgramWriter
	textures  *textures.Registry
	materials *materials.Registry
}

func NewStateDispatcher(prog ProgramWriter, texReg *textures.Registry, matReg *materials.Registry) *StateDispatcher {

	assert.T(prog != nil, "State dispatcher created with a nil program writer")
	assert.T(texReg != nil, "State dispatcher created with a nil texture registry")
	assert.T(matReg != nil, "State dispatcher created with a nil material registry")

	return &StateDispatcher{prog: prog, textures: texReg, materials: matReg}
}

func (d *StateDispatcher) SetModel(modelMat *gglm.Mat4) {
	d.prog.SetUnifMat4(shaders.Uniform_Model.Name(), modelMat)
}

// SetColor pushes a flat object color and turns texturing off for the next
// draw call.
func (d *StateDispatcher) SetColor(r, g, b, a float32) {

	color := gglm.NewVec4(r, g, b, a)

	d.prog.SetUnifBool(shaders.Uniform_UseTexture.Name(), false)
	d.prog.SetUnifVec4(shaders.Uniform_ObjectColor.Name(), &color)
}

// SetTexture turns texturing on and pushes the texture unit registered under
// tag as the sampler. An unknown tag pushes the invalid sampler -1 and
// returns false; the draw degrades instead of reusing a previous slot.
func (d *StateDispatcher) SetTexture(tag string) bool {

	d.prog.SetUnifBool(shaders.Uniform_UseTexture.Name(), true)

	slot := d.textures.FindSlot(tag)
	d.prog.SetUnifInt32(shaders.Uniform_ObjectTexture.Name(), slot)

	if slot < 0 {
		logging.WarnLog.Printf("No texture registered under tag '%s', pushed invalid sampler\n", tag)
		return false
	}

	return true
}

func (d *StateDispatcher) SetUVScale(u, v float32) {
	uvScale := gglm.NewVec2(u, v)
	d.prog.SetUnifVec2(shaders.Uniform_UVScale.Name(), &uvScale)
}

// SetMaterial pushes the property bundle registered under tag. An unknown
// tag pushes nothing at all, so earlier material state is never partially
// overwritten with values from an unrelated entry.
func (d *StateDispatcher) SetMaterial(tag string) bool {

	mat, found := d.materials.Find(tag)
	if !found {
		logging.WarnLog.Printf("No material registered under tag '%s', skipping material push\n", tag)
		return false
	}

	d.prog.SetUnifVec3(shaders.Uniform_MaterialAmbientColor.Name(), &mat.AmbientColor)
	d.prog.SetUnifFloat32(shaders.Uniform_MaterialAmbientStrength.Name(), mat.AmbientStrength)
	d.prog.SetUnifVec3(shaders.Uniform_MaterialDiffuseColor.Name(), &mat.DiffuseColor)
	d.prog.SetUnifVec3(shaders.Uniform_MaterialSpecularColor.Name(), &mat.SpecularColor)
	d.prog.SetUnifFloat32(shaders.Uniform_MaterialShininess.Name(), mat.Shininess)

	return true
}

// SetLights pushes the light bank. Slots past len(lights) are zero filled so
// stale lights from an earlier configuration can't bleed into the frame.
// Called once during preparation, not per draw.
func (d *StateDispatcher) SetLights(lights []LightSource) {

	assert.T(len(lights) <= shaders.MaxLights, "Got %d light sources but the shader bank holds %d", len(lights), shaders.MaxLights)

	for i := 0; i < shaders.MaxLights; i++ {

		var light LightSource
		if i < len(lights) {
			light = lights[i]
		}

		d.prog.SetUnifVec3(shaders.LightUniform_Position.Name(i), &light.Position)
		d.prog.SetUnifVec3(shaders.LightUniform_AmbientColor.Name(i), &light.AmbientColor)
		d.prog.SetUnifVec3(shaders.LightUniform_DiffuseColor.Name(i), &light.DiffuseColor)
		d.prog.SetUnifVec3(shaders.LightUniform_SpecularColor.Name(i), &light.SpecularColor)
		d.prog.SetUnifFloat32(shaders.LightUniform_FocalStrength.Name(i), light.FocalStrength)
		d.prog.SetUnifFloat32(shaders.LightUniform_SpecularIntensity.Name(i), light.SpecularIntensity)
	}
}

func (d *StateDispatcher) EnableLighting(on bool) {
	d.prog.SetUnifBool(shaders.Uniform_UseLighting.Name(), on)
}
