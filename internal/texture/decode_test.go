package texture_test

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"deskscene/internal/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

// pngChunk appends a length-prefixed, CRC-terminated PNG chunk.
func pngChunk(buf *bytes.Buffer, kind string, data []byte) {
	_ = binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(kind)
	buf.Write(data)
	crc := crc32.NewIEEE()
	crc.Write([]byte(kind))
	crc.Write(data)
	_ = binary.Write(buf, binary.BigEndian, crc.Sum32())
}

// grayAlphaPNG builds a 1x1 PNG of colour type 4, which image/png can
// decode but never writes.
func grayAlphaPNG(t *testing.T, gray, alpha byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	pngChunk(&buf, "IHDR", []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 4, 0, 0, 0})

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	_, err := zw.Write([]byte{0, gray, alpha}) // filter none, one pixel
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	pngChunk(&buf, "IDAT", idat.Bytes())
	pngChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

func TestDecodeFileFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255}) // top
	img.Set(0, 1, color.NRGBA{B: 255, A: 255}) // bottom
	path := writeImage(t, "two.png", func(f *os.File) error { return png.Encode(f, img) })

	out, err := texture.DecodeFile(path)
	require.NoError(t, err)

	// An opaque image is stored as truecolor, so it comes back as RGB.
	assert.Equal(t, 1, out.Width)
	assert.Equal(t, 2, out.Height)
	assert.Equal(t, 3, out.Channels)
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0}, out.Pix)
}

func TestDecodeFileKeepsStraightAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 200, G: 40, A: 128}) // top, translucent
	img.Set(0, 1, color.NRGBA{G: 255, A: 255})        // bottom
	path := writeImage(t, "alpha.png", func(f *os.File) error { return png.Encode(f, img) })

	out, err := texture.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Channels)
	assert.Equal(t, []byte{0, 255, 0, 255, 200, 40, 0, 128}, out.Pix)
}

func TestDecodeFilePaletteWithTransparency(t *testing.T) {
	palette := color.Palette{color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 128}}
	img := image.NewPaletted(image.Rect(0, 0, 1, 1), palette)
	img.SetColorIndex(0, 0, 1)
	path := writeImage(t, "palette.png", func(f *os.File) error { return png.Encode(f, img) })

	out, err := texture.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Channels)
	assert.Equal(t, []byte{0, 0, 255, 128}, out.Pix)
}

func TestDecodeFileRejectsGrayAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray_alpha.png")
	require.NoError(t, os.WriteFile(path, grayAlphaPNG(t, 100, 128), 0o644))

	_, err := texture.DecodeFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, texture.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "2 channels")
}

func TestDecodeFileJPEGIsRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := writeImage(t, "tex.jpg", func(f *os.File) error { return jpeg.Encode(f, img, nil) })

	out, err := texture.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Channels)
	assert.Len(t, out.Pix, 4*3*3)
}

func TestDecodeFileRejectsGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writeImage(t, "gray.png", func(f *os.File) error { return png.Encode(f, img) })

	_, err := texture.DecodeFile(path)
	assert.ErrorIs(t, err, texture.ErrUnsupportedFormat)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := texture.DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecodeFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := texture.DecodeFile(path)
	assert.ErrorIs(t, err, texture.ErrDecode)
}
