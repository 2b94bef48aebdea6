// Package scene prepares and renders a fixed still-life scene: registries
// are filled once, then an ordered list of object descriptors is drawn every
// frame with fully dispatched shader state.
package scene

import (
	"stillscene/materials"
	"stillscene/meshes"
	"stillscene/textures"
)

// ShapeProvider is the mesh geometry collaborator: every kind is loaded once
// during preparation and drawn any number of times afterwards.
// meshes.ShapeBank is the real implementation.
type ShapeProvider interface {
	LoadAll() error
	Draw(kind meshes.Kind)
	Destroy()
}

// TextureFile names one image to load into the texture registry.
type TextureFile struct {
	Path string
	Tag  string
}

// Builder owns the one-time resource preparation and the per-frame draw
// sequence. Single threaded: Prepare once, Render per frame, Destroy once.
type Builder struct {
	disp      *StateDispatcher
	textures  *textures.Registry
	materials *materials.Registry
	shapes    ShapeProvider

	textureFiles []TextureFile
	materialDefs []materials.Material
	lights       []LightSource
	objects      []ObjectDesc

	prepared bool
}

func NewBuilder(
	disp *StateDispatcher,
	texReg *textures.Registry,
	matReg *materials.Registry,
	shapes ShapeProvider,
	textureFiles []TextureFile,
	materialDefs []materials.Material,
	lights []LightSource,
	objects []ObjectDesc,
) *Builder {

	return &Builder{
		disp:         disp,
		textures:     texReg,
		materials:    matReg,
		shapes:       shapes,
		textureFiles: textureFiles,
		materialDefs: materialDefs,
		lights:       lights,
		objects:      objects,
	}
}

// Prepare fills the registries, configures the light bank and loads every
// mesh kind. Idempotent; only the first call does work. Texture failures are
// logged and skipped, a mesh load failure is returned since nothing could be
// drawn without its geometry.
func (b *Builder) Prepare() error {

	if b.prepared {
		return nil
	}

	for i := 0; i < len(b.textureFiles); i++ {
		// A failed load only degrades draws that reference the tag
		b.textures.Load(b.textureFiles[i].Path, b.textureFiles[i].Tag)
	}

	for i := 0; i < len(b.materialDefs); i++ {
		b.materials.Define(b.materialDefs[i])
	}

	b.disp.EnableLighting(true)
	b.disp.SetLights(b.lights)

	if err := b.shapes.LoadAll(); err != nil {
		return err
	}

	b.prepared = true
	return nil
}

// Render draws the object list in order. For each object the transform and
// appearance uniforms are fully dispatched before its draw call, since
// uniform pushes are consumed synchronously by the next draw. Render never
// mutates the scene data; two consecutive calls issue identical sequences.
func (b *Builder) Render() {

	b.textures.BindAll()

	for i := 0; i < len(b.objects); i++ {

		obj := &b.objects[i]

		trMat := ComposeTransform(obj.Scale, obj.RotationDeg.X(), obj.RotationDeg.Y(), obj.RotationDeg.Z(), obj.Position)
		b.disp.SetModel(&trMat.Mat4)

		if obj.Color != nil {
			b.disp.SetColor(obj.Color.X(), obj.Color.Y(), obj.Color.Z(), obj.Color.W())
		}

		if obj.MaterialTag != "" {
			b.disp.SetMaterial(obj.MaterialTag)
		}

		if obj.TextureTag != "" {
			b.disp.SetTexture(obj.TextureTag)
		}

		if obj.UVScale != nil {
			b.disp.SetUVScale(obj.UVScale.X(), obj.UVScale.Y())
		}

		b.shapes.Draw(obj.Mesh)
	}
}

// Destroy releases every GPU resource prepared by the builder.
func (b *Builder) Destroy() {

	b.textures.Destroy()
	b.materials.Clear()
	b.shapes.Destroy()
	b.prepared = false
}
