package texture_test

import (
	"errors"
	"testing"

	"deskscene/internal/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	next    uint32
	bound   map[int]uint32
	deleted []uint32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{next: 100, bound: make(map[int]uint32)}
}

func (b *fakeBackend) Upload(img *texture.Image) (uint32, error) {
	b.next++
	return b.next, nil
}

func (b *fakeBackend) Bind(slot int, handle uint32) { b.bound[slot] = handle }
func (b *fakeBackend) Delete(handle uint32)         { b.deleted = append(b.deleted, handle) }

func rgbDecoder(channels int) texture.Decoder {
	return texture.DecoderFunc(func(path string) (*texture.Image, error) {
		return &texture.Image{
			Pix:      make([]byte, 4*channels),
			Width:    2,
			Height:   2,
			Channels: channels,
		}, nil
	})
}

func TestLoadAndLookup(t *testing.T) {
	reg := texture.NewRegistry(newFakeBackend(), rgbDecoder(3))

	require.NoError(t, reg.Load("wood.jpg", "woodTexture"))
	require.NoError(t, reg.Load("book.jpg", "backDrop"))

	handle, ok := reg.FindHandle("backDrop")
	require.True(t, ok)
	assert.Equal(t, uint32(102), handle)

	slot, ok := reg.FindSlot("backDrop")
	require.True(t, ok)
	assert.Equal(t, 1, slot)

	_, ok = reg.FindHandle("backdrop")
	assert.False(t, ok, "lookup is case sensitive")
	slot, ok = reg.FindSlot("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, slot)
}

func TestDuplicateTagRejected(t *testing.T) {
	reg := texture.NewRegistry(newFakeBackend(), rgbDecoder(4))

	require.NoError(t, reg.Load("a.png", "tex"))
	err := reg.Load("b.png", "tex")
	require.ErrorIs(t, err, texture.ErrDuplicateTag)

	assert.Equal(t, 1, reg.Len())
	handle, _ := reg.FindHandle("tex")
	assert.Equal(t, uint32(101), handle, "first registration wins")
}

func TestUnsupportedChannelCountLeavesRegistryUnchanged(t *testing.T) {
	reg := texture.NewRegistry(newFakeBackend(), rgbDecoder(2))

	before := reg.Len()
	err := reg.Load("gray-alpha.png", "ga")
	require.ErrorIs(t, err, texture.ErrUnsupportedFormat)
	assert.Equal(t, before, reg.Len())
	_, ok := reg.FindSlot("ga")
	assert.False(t, ok)
}

func TestDecodeErrorIsReported(t *testing.T) {
	failing := texture.DecoderFunc(func(path string) (*texture.Image, error) {
		return nil, texture.ErrDecode
	})
	reg := texture.NewRegistry(newFakeBackend(), failing)

	err := reg.Load("bad.jpg", "bad")
	assert.True(t, errors.Is(err, texture.ErrDecode))
	assert.Zero(t, reg.Len())
}

func TestResourceExhausted(t *testing.T) {
	reg := texture.NewRegistry(newFakeBackend(), rgbDecoder(3))
	for i := 0; i < texture.MaxSlots; i++ {
		require.NoError(t, reg.Load("t.jpg", string(rune('a'+i))))
	}

	err := reg.Load("t.jpg", "one-too-many")
	require.ErrorIs(t, err, texture.ErrResourceExhausted)
	assert.Equal(t, texture.MaxSlots, reg.Len())
}

func TestBindAllUsesConsecutiveSlots(t *testing.T) {
	backend := newFakeBackend()
	reg := texture.NewRegistry(backend, rgbDecoder(3))
	require.NoError(t, reg.Load("a.jpg", "a"))
	require.NoError(t, reg.Load("b.jpg", "b"))
	require.NoError(t, reg.Load("c.jpg", "c"))

	reg.BindAll()

	assert.Equal(t, map[int]uint32{0: 101, 1: 102, 2: 103}, backend.bound)
	assert.Equal(t, []string{"a", "b", "c"}, reg.Tags())
}

func TestBindSingle(t *testing.T) {
	backend := newFakeBackend()
	reg := texture.NewRegistry(backend, rgbDecoder(3))
	require.NoError(t, reg.Load("a.jpg", "a"))
	require.NoError(t, reg.Load("b.jpg", "b"))

	slot, ok := reg.Bind("b")
	require.True(t, ok)
	assert.Equal(t, 1, slot)
	assert.Equal(t, map[int]uint32{1: 102}, backend.bound)

	_, ok = reg.Bind("nope")
	assert.False(t, ok)
}

func TestReleaseAllDeletesEveryHandle(t *testing.T) {
	backend := newFakeBackend()
	reg := texture.NewRegistry(backend, rgbDecoder(3))
	require.NoError(t, reg.Load("a.jpg", "a"))
	require.NoError(t, reg.Load("b.jpg", "b"))

	reg.ReleaseAll()

	assert.ElementsMatch(t, []uint32{101, 102}, backend.deleted)
	assert.Zero(t, reg.Len())
	_, ok := reg.FindHandle("a")
	assert.False(t, ok)

	// Tags are free again after release.
	require.NoError(t, reg.Load("a.jpg", "a"))
	slot, _ := reg.FindSlot("a")
	assert.Equal(t, 0, slot)
}

func TestEmptyTag(t *testing.T) {
	reg := texture.NewRegistry(newFakeBackend(), rgbDecoder(3))
	assert.Error(t, reg.Load("a.jpg", ""))
}
