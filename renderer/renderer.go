package renderer

import "stillscene/meshes"

// Render issues draw calls for meshes whose shader state has already been
// pushed by the scene state dispatcher.
type Render interface {
	DrawMesh(mesh *meshes.Mesh)
	FrameEnd()
}
