package scene

import "github.com/bloeys/gglm/gglm"

// LightSource is one point light of the scene shader's fixed bank of
// shaders.MaxLights lights.
type LightSource struct {
	Position gglm.Vec3

	AmbientColor  gglm.Vec3
	DiffuseColor  gglm.Vec3
	SpecularColor gglm.Vec3

	FocalStrength     float32
	SpecularIntensity float32
}
