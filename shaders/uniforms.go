package shaders

import (
	"fmt"

	"stillscene/assert"
	"stillscene/logging"
)

// MaxLights is the size of the lightSources uniform array.
// Must match res/shaders/scene.glsl.
const MaxLights = 4

// Uniform enumerates every uniform the scene layer pushes. The Name strings
// are a wire contract with the shader program and must not drift.
type Uniform int

const (
	Uniform_Unknown Uniform = iota
	Uniform_Model
	Uniform_View
	Uniform_Projection
	Uniform_ViewPosition
	Uniform_ObjectColor
	Uniform_ObjectTexture
	Uniform_UseTexture
	Uniform_UseLighting
	Uniform_UVScale
	Uniform_MaterialAmbientColor
	Uniform_MaterialAmbientStrength
	Uniform_MaterialDiffuseColor
	Uniform_MaterialSpecularColor
	Uniform_MaterialShininess
)

func (u Uniform) Name() string {

	switch u {
	case Uniform_Model:
		return "model"
	case Uniform_View:
		return "view"
	case Uniform_Projection:
		return "projection"
	case Uniform_ViewPosition:
		return "viewPosition"
	case Uniform_ObjectColor:
		return "objectColor"
	case Uniform_ObjectTexture:
		return "objectTexture"
	case Uniform_UseTexture:
		return "bUseTexture"
	case Uniform_UseLighting:
		return "bUseLighting"
	case Uniform_UVScale:
		return "UVscale"
	case Uniform_MaterialAmbientColor:
		return "material.ambientColor"
	case Uniform_MaterialAmbientStrength:
		return "material.ambientStrength"
	case Uniform_MaterialDiffuseColor:
		return "material.diffuseColor"
	case Uniform_MaterialSpecularColor:
		return "material.specularColor"
	case Uniform_MaterialShininess:
		return "material.shininess"

	default:
		logging.ErrLog.Fatalf("Unknown uniform '%d'\n", u)
		return ""
	}
}

// LightUniform enumerates the per-light fields of the lightSources array.
type LightUniform int

const (
	LightUniform_Unknown LightUniform = iota
	LightUniform_Position
	LightUniform_AmbientColor
	LightUniform_DiffuseColor
	LightUniform_SpecularColor
	LightUniform_FocalStrength
	LightUniform_SpecularIntensity
)

func (lu LightUniform) field() string {

	switch lu {
	case LightUniform_Position:
		return "position"
	case LightUniform_AmbientColor:
		return "ambientColor"
	case LightUniform_DiffuseColor:
		return "diffuseColor"
	case LightUniform_SpecularColor:
		return "specularColor"
	case LightUniform_FocalStrength:
		return "focalStrength"
	case LightUniform_SpecularIntensity:
		return "specularIntensity"

	default:
		logging.ErrLog.Fatalf("Unknown light uniform '%d'\n", lu)
		return ""
	}
}

// Name returns the indexed uniform name, e.g. 'lightSources[2].diffuseColor'.
func (lu LightUniform) Name(lightIndex int) string {
	assert.T(lightIndex >= 0 && lightIndex < MaxLights, "Light index '%d' is outside [0,%d)", lightIndex, MaxLights)
	return fmt.Sprintf("lightSources[%d].%s", lightIndex, lu.field())
}
