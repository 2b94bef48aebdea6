package shaders

import (
	"stillscene/assert"
	"stillscene/logging"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderProgram is a linked GL program plus a cache of uniform locations.
// All SetUnif* calls write the uniform immediately, whether or not the
// program is currently bound.
type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32

	unifLocs map[string]int32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

func (sp *ShaderProgram) Link() {

	gl.LinkProgram(sp.Id)

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
	}

	if sp.GeomShaderId != 0 {
		gl.DeleteShader(sp.GeomShaderId)
	}
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

func (sp *ShaderProgram) Delete() {
	gl.DeleteProgram(sp.Id)
	sp.Id = 0
}

func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {

	loc, ok := sp.unifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(sp.Id, name)
	assert.T(loc != -1, "Uniform '%s' doesn't exist on shader program %d", uniformName, sp.Id)
	sp.unifLocs[uniformName] = loc
	return loc
}

func (sp *ShaderProgram) SetUnifBool(uniformName string, val bool) {

	i := int32(0)
	if val {
		i = 1
	}
	gl.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), i)
}

func (sp *ShaderProgram) SetUnifInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnifFloat32(uniformName string, val float32) {
	gl.ProgramUniform1f(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {
	gl.ProgramUniform2fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec2.Data[0])
}

func (sp *ShaderProgram) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	gl.ProgramUniform3fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec3.Data[0])
}

func (sp *ShaderProgram) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec4.Data[0])
}

func (sp *ShaderProgram) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat4.Data[0][0])
}
