package textures

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ Backend = &GLBackend{}

// GLBackend uploads to real GL texture objects. Pixels are expected in
// tightly packed RGBA byte order (what decodeImage produces).
type GLBackend struct{}

func NewGLBackend() *GLBackend {
	return &GLBackend{}
}

func (b *GLBackend) CreateTexture(width, height int32, hasAlpha bool, pixels []byte) (uint32, error) {

	var texID uint32
	gl.GenTextures(1, &texID)
	if texID == 0 {
		return 0, fmt.Errorf("failed to create GL texture object. GL error=%d", gl.GetError())
	}

	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat := int32(gl.RGB8)
	if hasAlpha {
		internalFormat = gl.RGBA8
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texID, nil
}

func (b *GLBackend) BindTexture(slot int32, texID uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, texID)
}

func (b *GLBackend) DeleteTextures(texIDs []uint32) {

	if len(texIDs) == 0 {
		return
	}

	gl.DeleteTextures(int32(len(texIDs)), &texIDs[0])
}
