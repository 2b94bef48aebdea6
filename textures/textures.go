// Package textures holds the tag-addressed texture registry. Textures are
// loaded once during scene preparation, occupy one of 16 fixed texture units,
// and are looked up by tag at draw time.
package textures

import (
	"stillscene/assert"
	"stillscene/logging"
)

// MaxTextureSlots is the number of texture units the scene shader can
// sample from. Loads past this count fail with a capacity error.
const MaxTextureSlots = 16

type Entry struct {
	Tag   string
	TexID uint32
	Slot  int32
}

// Backend abstracts the GPU side of the registry so it can run against a
// recorder in tests. GLBackend is the real implementation.
type Backend interface {
	CreateTexture(width, height int32, hasAlpha bool, pixels []byte) (uint32, error)
	BindTexture(slot int32, texID uint32)
	DeleteTextures(texIDs []uint32)
}

type Registry struct {
	backend Backend
	entries []Entry
}

func NewRegistry(backend Backend) *Registry {
	assert.T(backend != nil, "Texture registry created with a nil backend")
	return &Registry{backend: backend}
}

// Load decodes the image at path, uploads it and registers it under tag in
// the next sequential slot. Failures are logged and leave the registry
// untouched. Tags are not checked for uniqueness; lookups return the first
// match in load order.
func (r *Registry) Load(path, tag string) bool {

	if len(r.entries) >= MaxTextureSlots {
		logging.ErrLog.Printf("All %d texture slots are in use, cannot load '%s' (tag '%s')\n", MaxTextureSlots, path, tag)
		return false
	}

	img, hasAlpha, err := decodeImage(path)
	if err != nil {
		logging.ErrLog.Printf("Could not load image '%s'. Err: %s\n", path, err.Error())
		return false
	}

	w := int32(img.Rect.Dx())
	h := int32(img.Rect.Dy())

	texID, err := r.backend.CreateTexture(w, h, hasAlpha, img.Pix)
	if err != nil {
		logging.ErrLog.Printf("Could not upload texture '%s'. Err: %s\n", path, err.Error())
		return false
	}

	slot := int32(len(r.entries))
	r.entries = append(r.entries, Entry{Tag: tag, TexID: texID, Slot: slot})

	logging.InfoLog.Printf("Loaded texture '%s' (tag '%s'): %dx%d, slot %d\n", path, tag, w, h, slot)
	return true
}

// BindAll binds every registered texture to its texture unit. Call once per
// frame before draws that sample scene textures.
func (r *Registry) BindAll() {
	for i := 0; i < len(r.entries); i++ {
		r.backend.BindTexture(r.entries[i].Slot, r.entries[i].TexID)
	}
}

// FindSlot returns the texture unit of the first entry registered under tag,
// or -1 if the tag is unknown. -1 is the invalid-sampler sentinel the
// dispatcher pushes for unresolved textures.
func (r *Registry) FindSlot(tag string) int32 {

	for i := 0; i < len(r.entries); i++ {
		if r.entries[i].Tag == tag {
			return r.entries[i].Slot
		}
	}

	return -1
}

// FindHandle returns the GPU texture name of the first entry registered
// under tag.
func (r *Registry) FindHandle(tag string) (uint32, bool) {

	for i := 0; i < len(r.entries); i++ {
		if r.entries[i].Tag == tag {
			return r.entries[i].TexID, true
		}
	}

	return 0, false
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Destroy releases every held GPU texture exactly once and empties the
// registry. The registry can be reused for a fresh Load sequence afterwards.
func (r *Registry) Destroy() {

	if len(r.entries) == 0 {
		return
	}

	texIDs := make([]uint32, len(r.entries))
	for i := 0; i < len(r.entries); i++ {
		texIDs[i] = r.entries[i].TexID
	}

	r.backend.DeleteTextures(texIDs)
	r.entries = nil
}
