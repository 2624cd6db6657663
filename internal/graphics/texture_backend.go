package graphics

import (
	"fmt"

	"deskscene/internal/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// TextureBackend uploads decoded images as repeating, linearly filtered,
// mipmapped 2D textures. It implements texture.Backend.
type TextureBackend struct{}

func (TextureBackend) Upload(img *texture.Image) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch img.Channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("%w: %d channels", texture.ErrUnsupportedFormat, img.Channels)
	}
	if len(img.Pix) < img.Width*img.Height*img.Channels {
		return 0, fmt.Errorf("texture upload: %d bytes for %dx%dx%d image", len(img.Pix), img.Width, img.Height, img.Channels)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned in general.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}

func (TextureBackend) Bind(slot int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (TextureBackend) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
