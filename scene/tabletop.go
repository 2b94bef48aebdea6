package scene

import (
	"path/filepath"

	"stillscene/materials"
	"stillscene/meshes"

	"github.com/bloeys/gglm/gglm"
)

// The tabletop still life: an apple with its stem and a lidded ceramic jar
// on a polished wooden table, two cardboard boxes behind them and a teacup
// on the larger box.

func vec4Ptr(x, y, z, w float32) *gglm.Vec4 {
	v := gglm.NewVec4(x, y, z, w)
	return &v
}

var white = vec4Ptr(1, 1, 1, 1)

// TabletopTextures lists the images loaded into the texture registry, in
// slot order.
func TabletopTextures(textureDir string) []TextureFile {

	return []TextureFile{
		{Path: filepath.Join(textureDir, "green_apple.jpg"), Tag: "apple"},
		{Path: filepath.Join(textureDir, "apple_stem.jpg"), Tag: "stem"},
		{Path: filepath.Join(textureDir, "rusticwood.jpg"), Tag: "table"},
		{Path: filepath.Join(textureDir, "ceramic1.jpg"), Tag: "ceramic"},
		{Path: filepath.Join(textureDir, "white_cardboard.jpg"), Tag: "cardboard"},
	}
}

func TabletopMaterials() []materials.Material {

	return []materials.Material{
		{
			Tag:             "gold",
			AmbientColor:    gglm.NewVec3(0.2, 0.2, 0.1),
			AmbientStrength: 0.4,
			DiffuseColor:    gglm.NewVec3(0.3, 0.3, 0.2),
			SpecularColor:   gglm.NewVec3(0.6, 0.5, 0.4),
			Shininess:       22,
		},
		{
			Tag:             "appleskin",
			AmbientColor:    gglm.NewVec3(0.2, 0.2, 0.1),
			AmbientStrength: 0.2,
			DiffuseColor:    gglm.NewVec3(0.3, 0.3, 0.2),
			SpecularColor:   gglm.NewVec3(0.3, 0.3, 0.3),
			Shininess:       5,
		},
		{
			Tag:             "cement",
			AmbientColor:    gglm.NewVec3(0.2, 0.2, 0.2),
			AmbientStrength: 0.2,
			DiffuseColor:    gglm.NewVec3(0.5, 0.5, 0.5),
			SpecularColor:   gglm.NewVec3(0.4, 0.4, 0.4),
			Shininess:       0.5,
		},
		{
			Tag:             "wood",
			AmbientColor:    gglm.NewVec3(0.2, 0.2, 0.2),
			AmbientStrength: 0.2,
			DiffuseColor:    gglm.NewVec3(0.3, 0.3, 0.3),
			SpecularColor:   gglm.NewVec3(0.4, 0.4, 0.4),
			Shininess:       0.3,
		},
		{
			Tag:             "polishWood",
			AmbientColor:    gglm.NewVec3(0.4, 0.3, 0.1),
			AmbientStrength: 0.2,
			DiffuseColor:    gglm.NewVec3(0.3, 0.2, 0.1),
			SpecularColor:   gglm.NewVec3(0.1, 0.1, 0.1),
			Shininess:       11,
		},
		{
			Tag:             "tile",
			AmbientColor:    gglm.NewVec3(0.2, 0.3, 0.4),
			AmbientStrength: 0.3,
			DiffuseColor:    gglm.NewVec3(0.3, 0.2, 0.1),
			SpecularColor:   gglm.NewVec3(0.4, 0.5, 0.6),
			Shininess:       25,
		},
		{
			Tag:             "glass",
			AmbientColor:    gglm.NewVec3(0.4, 0.4, 0.4),
			AmbientStrength: 0.3,
			DiffuseColor:    gglm.NewVec3(0.3, 0.3, 0.3),
			SpecularColor:   gglm.NewVec3(0.6, 0.6, 0.6),
			Shininess:       85,
		},
		{
			Tag:             "clay",
			AmbientColor:    gglm.NewVec3(0.2, 0.2, 0.3),
			AmbientStrength: 0.3,
			DiffuseColor:    gglm.NewVec3(0.4, 0.4, 0.5),
			SpecularColor:   gglm.NewVec3(0.2, 0.2, 0.4),
			Shininess:       0.5,
		},
		{
			Tag:             "polishClay",
			AmbientColor:    gglm.NewVec3(0.4, 0.3, 0.1),
			AmbientStrength: 0.2,
			DiffuseColor:    gglm.NewVec3(0.3, 0.2, 0.1),
			SpecularColor:   gglm.NewVec3(0.1, 0.1, 0.1),
			Shininess:       30,
		},
	}
}

func TabletopLights() []LightSource {

	return []LightSource{
		{
			Position:          gglm.NewVec3(3, 14, 0),
			AmbientColor:      gglm.NewVec3(0.01, 0.01, 0.01),
			DiffuseColor:      gglm.NewVec3(0.4, 0.4, 0.4),
			SpecularColor:     gglm.NewVec3(0.1, 0.1, 0.1),
			FocalStrength:     32,
			SpecularIntensity: 0.05,
		},
		{
			Position:          gglm.NewVec3(-3, 14, 0),
			AmbientColor:      gglm.NewVec3(0.01, 0.01, 0.01),
			DiffuseColor:      gglm.NewVec3(0.4, 0.4, 0.4),
			SpecularColor:     gglm.NewVec3(0, 0, 0),
			FocalStrength:     32,
			SpecularIntensity: 0.05,
		},
		{
			Position:          gglm.NewVec3(0.6, 5, 6),
			AmbientColor:      gglm.NewVec3(0.01, 0.01, 0.01),
			DiffuseColor:      gglm.NewVec3(0.3, 0.3, 0.3),
			SpecularColor:     gglm.NewVec3(0.3, 0.3, 0.3),
			FocalStrength:     12,
			SpecularIntensity: 0.5,
		},
		{
			Position:          gglm.NewVec3(-0.6, 5, 6),
			AmbientColor:      gglm.NewVec3(0.01, 0.01, 0.01),
			DiffuseColor:      gglm.NewVec3(0.3, 0.3, 0.3),
			SpecularColor:     gglm.NewVec3(0.3, 0.3, 0.3),
			FocalStrength:     12,
			SpecularIntensity: 0.5,
		},
	}
}

// TabletopObjects is the ordered draw list. Order is part of the scene: the
// table renders first, then the objects standing on it.
func TabletopObjects() []ObjectDesc {

	return []ObjectDesc{
		{
			Name:        "table",
			Mesh:        meshes.Kind_Plane,
			Scale:       gglm.NewVec3(20, 0, 10),
			Position:    gglm.NewVec3(0, 1.5, 0),
			MaterialTag: "polishWood",
			TextureTag:  "table",
			Color:       vec4Ptr(0.9, 0.8, 0.7, 1),
		},
		{
			Name:        "apple",
			Mesh:        meshes.Kind_Sphere,
			Scale:       gglm.NewVec3(1, 1.1, 1),
			RotationDeg: gglm.NewVec3(0, 0, -1),
			Position:    gglm.NewVec3(0, 2.5, 0),
			MaterialTag: "appleskin",
			TextureTag:  "apple",
		},
		{
			Name:        "apple stem",
			Mesh:        meshes.Kind_Cylinder,
			Scale:       gglm.NewVec3(0.1, 1, 0.1),
			RotationDeg: gglm.NewVec3(0, 0, -15),
			Position:    gglm.NewVec3(0, 3, 0),
			MaterialTag: "wood",
			TextureTag:  "stem",
		},
		{
			Name:        "jar body",
			Mesh:        meshes.Kind_Cylinder,
			Scale:       gglm.NewVec3(1.5, 2, 1.5),
			Position:    gglm.NewVec3(2.5, 1.5, 0),
			MaterialTag: "polishClay",
			TextureTag:  "ceramic",
		},
		{
			Name:        "jar lid knob",
			Mesh:        meshes.Kind_Sphere,
			Scale:       gglm.NewVec3(0.5, 0.325, 0.5),
			Position:    gglm.NewVec3(2.5, 3.85, 0),
			MaterialTag: "polishClay",
			TextureTag:  "ceramic",
		},
		{
			Name:        "jar lid rim",
			Mesh:        meshes.Kind_Torus,
			Scale:       gglm.NewVec3(1.25, 1.25, 1.25),
			RotationDeg: gglm.NewVec3(90, 0, 0),
			Position:    gglm.NewVec3(2.5, 3.45, 0),
			MaterialTag: "polishClay",
			TextureTag:  "ceramic",
		},
		{
			Name:        "jar lid plate",
			Mesh:        meshes.Kind_Cylinder,
			Scale:       gglm.NewVec3(1.25, 0.25, 1.25),
			Position:    gglm.NewVec3(2.5, 3.45, 0),
			MaterialTag: "polishClay",
			TextureTag:  "ceramic",
		},
		{
			Name:        "big box",
			Mesh:        meshes.Kind_Box,
			Scale:       gglm.NewVec3(4, 3, 3),
			RotationDeg: gglm.NewVec3(0, -30, 0),
			Position:    gglm.NewVec3(2.5, 3, -3.5),
			MaterialTag: "wood",
			TextureTag:  "cardboard",
			Color:       white,
		},
		{
			Name:        "thin box",
			Mesh:        meshes.Kind_Box,
			Scale:       gglm.NewVec3(2.5, 3.25, 0.5),
			RotationDeg: gglm.NewVec3(0, 25, 0),
			Position:    gglm.NewVec3(-0.35, 3.25, -1.5),
			MaterialTag: "wood",
			TextureTag:  "cardboard",
			Color:       white,
		},
		{
			Name:        "teacup",
			Mesh:        meshes.Kind_TaperedCylinder,
			Scale:       gglm.NewVec3(1.5, 1.5, 1.5),
			RotationDeg: gglm.NewVec3(180, 0, 0),
			Position:    gglm.NewVec3(2.5, 6, -3.5),
			MaterialTag: "polishClay",
			TextureTag:  "ceramic",
			Color:       white,
		},
		{
			Name:        "teacup handle",
			Mesh:        meshes.Kind_Torus,
			Scale:       gglm.NewVec3(0.5, 0.5, 0.5),
			Position:    gglm.NewVec3(3.5, 5.25, -3.5),
			MaterialTag: "polishClay",
			TextureTag:  "ceramic",
			Color:       white,
		},
	}
}
