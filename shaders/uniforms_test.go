package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The names below are a wire contract with res/shaders/scene.glsl. Renaming
// either side alone breaks every draw silently.
func TestUniformNames(t *testing.T) {

	cases := map[Uniform]string{
		Uniform_Model:                   "model",
		Uniform_View:                    "view",
		Uniform_Projection:              "projection",
		Uniform_ViewPosition:            "viewPosition",
		Uniform_ObjectColor:             "objectColor",
		Uniform_ObjectTexture:           "objectTexture",
		Uniform_UseTexture:              "bUseTexture",
		Uniform_UseLighting:             "bUseLighting",
		Uniform_UVScale:                 "UVscale",
		Uniform_MaterialAmbientColor:    "material.ambientColor",
		Uniform_MaterialAmbientStrength: "material.ambientStrength",
		Uniform_MaterialDiffuseColor:    "material.diffuseColor",
		Uniform_MaterialSpecularColor:   "material.specularColor",
		Uniform_MaterialShininess:       "material.shininess",
	}

	for u, want := range cases {
		assert.Equal(t, want, u.Name())
	}
}

func TestLightUniformNames(t *testing.T) {

	assert.Equal(t, "lightSources[0].position", LightUniform_Position.Name(0))
	assert.Equal(t, "lightSources[2].diffuseColor", LightUniform_DiffuseColor.Name(2))
	assert.Equal(t, "lightSources[3].specularIntensity", LightUniform_SpecularIntensity.Name(3))
	assert.Equal(t, "lightSources[1].ambientColor", LightUniform_AmbientColor.Name(1))
	assert.Equal(t, "lightSources[1].specularColor", LightUniform_SpecularColor.Name(1))
	assert.Equal(t, "lightSources[1].focalStrength", LightUniform_FocalStrength.Name(1))
}

func TestLightUniformNamePanicsOutsideBank(t *testing.T) {

	assert.Panics(t, func() { LightUniform_Position.Name(MaxLights) })
	assert.Panics(t, func() { LightUniform_Position.Name(-1) })
}
