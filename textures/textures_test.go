package textures

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTexture struct {
	texID    uint32
	width    int32
	height   int32
	hasAlpha bool
	pixels   []byte
}

// fakeBackend records GPU calls so registry behavior can be checked without
// a GL context.
type fakeBackend struct {
	nextTexID uint32
	created   []fakeTexture
	bound     map[int32]uint32
	deleted   []uint32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{bound: map[int32]uint32{}}
}

func (b *fakeBackend) CreateTexture(width, height int32, hasAlpha bool, pixels []byte) (uint32, error) {

	b.nextTexID++
	b.created = append(b.created, fakeTexture{
		texID:    b.nextTexID,
		width:    width,
		height:   height,
		hasAlpha: hasAlpha,
		pixels:   append([]byte(nil), pixels...),
	})

	return b.nextTexID, nil
}

func (b *fakeBackend) BindTexture(slot int32, texID uint32) {
	b.bound[slot] = texID
}

func (b *fakeBackend) DeleteTextures(texIDs []uint32) {
	b.deleted = append(b.deleted, texIDs...)
}

func writePNG(t *testing.T, name string, img image.Image) string {

	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadAssignsSequentialSlots(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	path := writePNG(t, "tex.png", solidNRGBA(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))

	require.True(t, reg.Load(path, "first"))
	require.True(t, reg.Load(path, "second"))
	require.True(t, reg.Load(path, "third"))
	require.Equal(t, 3, reg.Len())

	assert.Equal(t, int32(0), reg.FindSlot("first"))
	assert.Equal(t, int32(1), reg.FindSlot("second"))
	assert.Equal(t, int32(2), reg.FindSlot("third"))

	texID, found := reg.FindHandle("second")
	require.True(t, found)
	assert.Equal(t, uint32(2), texID)
}

func TestLoadMissingFileLeavesRegistryUntouched(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	assert.False(t, reg.Load(filepath.Join(t.TempDir(), "no-such-file.png"), "ghost"))
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, backend.created)
	assert.Equal(t, int32(-1), reg.FindSlot("ghost"))
}

func TestLoadRejectsGrayscaleImages(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, "gray.png", gray)

	assert.False(t, reg.Load(path, "gray"))
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, backend.created)
}

func TestLoadFlipsImageVertically(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	// Top row red, bottom row blue. After the upload flip the first stored
	// row must be the blue one.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	path := writePNG(t, "twotone.png", img)

	require.True(t, reg.Load(path, "twotone"))
	require.Len(t, backend.created, 1)

	pix := backend.created[0].pixels
	require.Len(t, pix, 8)
	assert.Equal(t, []byte{0, 0, 255, 255}, pix[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, pix[4:8])
}

func TestDuplicateTagsResolveToFirstLoaded(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	path := writePNG(t, "tex.png", solidNRGBA(1, 1, color.NRGBA{A: 255}))

	require.True(t, reg.Load(path, "wood"))
	require.True(t, reg.Load(path, "wood"))

	assert.Equal(t, int32(0), reg.FindSlot("wood"))

	texID, found := reg.FindHandle("wood")
	require.True(t, found)
	assert.Equal(t, uint32(1), texID)
}

func TestLoadFailsWhenAllSlotsAreTaken(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	path := writePNG(t, "tex.png", solidNRGBA(1, 1, color.NRGBA{A: 255}))

	for i := 0; i < MaxTextureSlots; i++ {
		require.True(t, reg.Load(path, fmt.Sprintf("tex-%d", i)))
	}

	assert.False(t, reg.Load(path, "one-too-many"))
	assert.Equal(t, MaxTextureSlots, reg.Len())
	assert.Len(t, backend.created, MaxTextureSlots)
	assert.Equal(t, int32(MaxTextureSlots-1), reg.FindSlot(fmt.Sprintf("tex-%d", MaxTextureSlots-1)))
}

func TestBindAllBindsEverySlot(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	path := writePNG(t, "tex.png", solidNRGBA(1, 1, color.NRGBA{A: 255}))
	require.True(t, reg.Load(path, "a"))
	require.True(t, reg.Load(path, "b"))

	reg.BindAll()

	require.Len(t, backend.bound, 2)
	assert.Equal(t, uint32(1), backend.bound[0])
	assert.Equal(t, uint32(2), backend.bound[1])
}

func TestDestroyReleasesEveryHandleOnce(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	path := writePNG(t, "tex.png", solidNRGBA(1, 1, color.NRGBA{A: 255}))
	require.True(t, reg.Load(path, "a"))
	require.True(t, reg.Load(path, "b"))
	require.True(t, reg.Load(path, "c"))

	reg.Destroy()

	assert.ElementsMatch(t, []uint32{1, 2, 3}, backend.deleted)
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, int32(-1), reg.FindSlot("a"))

	// A second Destroy must not touch the backend again
	reg.Destroy()
	assert.Len(t, backend.deleted, 3)
}

func TestRegistryReusableAfterDestroy(t *testing.T) {

	backend := newFakeBackend()
	reg := NewRegistry(backend)

	path := writePNG(t, "tex.png", solidNRGBA(1, 1, color.NRGBA{A: 255}))
	require.True(t, reg.Load(path, "a"))
	reg.Destroy()

	require.True(t, reg.Load(path, "a"))
	assert.Equal(t, int32(0), reg.FindSlot("a"))
}
