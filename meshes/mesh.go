package meshes

import (
	"errors"

	"stillscene/buffers"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
)

type SubMesh struct {
	BaseVertex int32
	BaseIndex  uint32
	IndexCount int32
}

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos
			- Loc1: Normal
			- Loc2: UV0
	*/
	Vao       buffers.VertexArray
	SubMeshes []SubMesh
}

// NewMesh imports the model file at modelPath and uploads every mesh in it
// into one interleaved pos/normal/uv vertex array. Missing normals or UVs
// are zero filled.
func NewMesh(name, modelPath string) (Mesh, error) {

	scene, release, err := asig.ImportFile(modelPath, asig.PostProcessTriangulate)
	if err != nil {
		return Mesh{}, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("No meshes found in file: " + modelPath)
	}

	mesh := Mesh{
		Name:      name,
		Vao:       buffers.NewVertexArray(),
		SubMeshes: make([]SubMesh, 0, len(scene.Meshes)),
	}

	vbo := buffers.NewVertexBuffer(
		buffers.Element{ElementType: buffers.DataTypeVec3}, // Position
		buffers.Element{ElementType: buffers.DataTypeVec3}, // Normal
		buffers.Element{ElementType: buffers.DataTypeVec2}, // UV0
	)
	ibo := buffers.NewIndexBuffer()

	// 8 floats per vertex with the layout above
	vertexBufData := make([]float32, 0, len(scene.Meshes[0].Vertices)*8)
	indexBufData := make([]uint32, 0, len(scene.Meshes[0].Faces)*3)

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		normals := sceneMesh.Normals
		if len(normals) == 0 {
			normals = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		var uvs []gglm.Vec3
		if len(sceneMesh.TexCoords) > 0 {
			uvs = sceneMesh.TexCoords[0]
		}
		if len(uvs) == 0 {
			uvs = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		indices := flattenFaces(sceneMesh.Faces)
		mesh.SubMeshes = append(mesh.SubMeshes, SubMesh{
			// Vertex the index buffer entries of this submesh are relative to
			BaseVertex: int32(len(vertexBufData)*4) / vbo.Stride,
			// First index (in the shared index buffer) of this submesh
			BaseIndex:  uint32(len(indexBufData)),
			IndexCount: int32(len(indices)),
		})

		for v := 0; v < len(sceneMesh.Vertices); v++ {
			vertexBufData = append(vertexBufData, sceneMesh.Vertices[v].Data[:]...)
			vertexBufData = append(vertexBufData, normals[v].Data[:]...)
			vertexBufData = append(vertexBufData, uvs[v].X(), uvs[v].Y())
		}

		indexBufData = append(indexBufData, indices...)
	}

	vbo.SetData(vertexBufData, buffers.BufUsage_Static_Draw)
	ibo.SetData(indexBufData)

	mesh.Vao.AddVertexBuffer(vbo)
	mesh.Vao.SetIndexBuffer(ibo)

	// Keep a following mesh load from attaching its buffers to this vao
	mesh.Vao.UnBind()

	return mesh, nil
}

func (m *Mesh) Delete() {
	m.Vao.Delete()
}

func flattenFaces(faces []asig.Face) []uint32 {

	uints := make([]uint32, 0, len(faces)*3)
	for i := 0; i < len(faces); i++ {
		for j := 0; j < len(faces[i].Indices); j++ {
			uints = append(uints, uint32(faces[i].Indices[j]))
		}
	}

	return uints
}
