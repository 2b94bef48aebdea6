package rend3dgl

import (
	"stillscene/meshes"
	"stillscene/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

type Rend3DGL struct {
	BoundMeshVaoId uint32
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}

func (r *Rend3DGL) DrawMesh(mesh *meshes.Mesh) {

	if mesh.Vao.Id != r.BoundMeshVaoId {
		mesh.Vao.Bind()
		r.BoundMeshVaoId = mesh.Vao.Id
	}

	for i := 0; i < len(mesh.SubMeshes); i++ {
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, mesh.SubMeshes[i].IndexCount, gl.UNSIGNED_INT, uintptr(mesh.SubMeshes[i].BaseIndex*4), mesh.SubMeshes[i].BaseVertex)
	}
}

func (r *Rend3DGL) FrameEnd() {
	r.BoundMeshVaoId = 0
}
