package buffers

import (
	"stillscene/assert"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type BufUsage int

// Docs for buffer usage: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
const (
	BufUsage_Unknown BufUsage = iota

	//Buffer is set only once and used many times
	BufUsage_Static_Draw
	//Buffer is changed a lot and used many times
	BufUsage_Dynamic_Draw
	//Buffer is set only once and used by the GPU at most a few times
	BufUsage_Stream_Draw
)

func (b BufUsage) ToGL() uint32 {

	switch b {
	case BufUsage_Static_Draw:
		return gl.STATIC_DRAW
	case BufUsage_Dynamic_Draw:
		return gl.DYNAMIC_DRAW
	case BufUsage_Stream_Draw:
		return gl.STREAM_DRAW
	}

	assert.T(false, "Unexpected BufUsage value '%v'", b)
	return 0
}
