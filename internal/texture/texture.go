// Package texture keeps the GPU textures of a scene, addressed by tag.
//
// Textures occupy consecutive texture units in registration order, so the
// slot of a texture is its registration index. At most MaxSlots textures fit.
package texture

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// MaxSlots is the number of texture units OpenGL guarantees to a fragment shader.
const MaxSlots = 16

var (
	ErrUnsupportedFormat = errors.New("texture: unsupported channel count")
	ErrDecode            = errors.New("texture: cannot decode image")
	ErrDuplicateTag      = errors.New("texture: duplicate tag")
	ErrResourceExhausted = errors.New("texture: no free texture slot")
)

// Backend owns the GPU side of a texture.
type Backend interface {
	Upload(img *Image) (uint32, error)
	Bind(slot int, handle uint32)
	Delete(handle uint32)
}

// Entry is a loaded texture.
type Entry struct {
	Tag      string
	Path     string
	Handle   uint32
	Slot     int
	Width    int
	Height   int
	Channels int
}

// Registry maps tags to loaded textures.
type Registry struct {
	backend Backend
	decoder Decoder
	entries []Entry
	byTag   map[string]int
}

// NewRegistry creates an empty registry. A nil decoder means FileDecoder.
func NewRegistry(backend Backend, decoder Decoder) *Registry {
	if decoder == nil {
		decoder = FileDecoder{}
	}
	return &Registry{
		backend: backend,
		decoder: decoder,
		byTag:   make(map[string]int),
	}
}

// Load decodes the image at path, uploads it and registers it under tag.
// On error the registry is left unchanged.
func (r *Registry) Load(path, tag string) error {
	if tag == "" {
		return fmt.Errorf("texture: empty tag for %s", path)
	}
	if _, ok := r.byTag[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("%w: %q would need slot %d", ErrResourceExhausted, tag, len(r.entries))
	}

	img, err := r.decoder.Decode(path)
	if err != nil {
		return fmt.Errorf("load texture %q: %w", tag, err)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return fmt.Errorf("load texture %q: %w: %d channels", tag, ErrUnsupportedFormat, img.Channels)
	}

	handle, err := r.backend.Upload(img)
	if err != nil {
		return fmt.Errorf("upload texture %q: %w", tag, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, Entry{
		Tag:      tag,
		Path:     path,
		Handle:   handle,
		Slot:     slot,
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
	})
	r.byTag[tag] = slot

	log.Info().
		Str("tag", tag).
		Str("path", path).
		Int("width", img.Width).
		Int("height", img.Height).
		Int("channels", img.Channels).
		Int("slot", slot).
		Msg("texture loaded")
	return nil
}

// BindAll binds every texture to the unit matching its slot.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.backend.Bind(e.Slot, e.Handle)
	}
}

// Bind binds a single texture to its unit and returns the slot.
func (r *Registry) Bind(tag string) (int, bool) {
	i, ok := r.byTag[tag]
	if !ok {
		return -1, false
	}
	e := r.entries[i]
	r.backend.Bind(e.Slot, e.Handle)
	return e.Slot, true
}

// FindHandle returns the GPU handle of tag.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	i, ok := r.byTag[tag]
	if !ok {
		return 0, false
	}
	return r.entries[i].Handle, true
}

// FindSlot returns the texture unit index of tag.
func (r *Registry) FindSlot(tag string) (int, bool) {
	i, ok := r.byTag[tag]
	if !ok {
		return -1, false
	}
	return r.entries[i].Slot, true
}

// ReleaseAll deletes every GPU texture and empties the registry.
func (r *Registry) ReleaseAll() {
	for _, e := range r.entries {
		r.backend.Delete(e.Handle)
	}
	r.entries = nil
	r.byTag = make(map[string]int)
}

func (r *Registry) Len() int { return len(r.entries) }

// Tags lists tags in slot order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.Tag
	}
	return tags
}
