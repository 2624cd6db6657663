package texture

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is decoded 8-bit pixel data, rows ordered bottom to top.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decoder turns an image file into pixels.
type Decoder interface {
	Decode(path string) (*Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (*Image, error)

func (f DecoderFunc) Decode(path string) (*Image, error) { return f(path) }

// FileDecoder decodes PNG, JPEG, BMP, TIFF and WebP files from disk.
type FileDecoder struct{}

func (FileDecoder) Decode(path string) (*Image, error) { return DecodeFile(path) }

// DecodeFile reads an image file and returns its pixels flipped vertically,
// so the first row is the bottom of the picture as OpenGL expects.
// Only 3 (RGB) and 4 (RGBA) channel images are accepted. Alpha is straight,
// not premultiplied.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open texture file: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	var channels int
	if format == "png" {
		channels, err = pngChannels(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
	} else {
		channels = channelCount(img)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %s has %d channels", ErrUnsupportedFormat, path, channels)
	}

	b := img.Bounds()
	out := &Image{Width: b.Dx(), Height: b.Dy(), Channels: channels}
	if channels == 3 {
		out.Pix = packRGB(transform.FlipV(img))
	} else {
		out.Pix = flipNRGBA(toNRGBA(img))
	}
	return out, nil
}

// packRGB drops the alpha byte of an opaque image.
func packRGB(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return pix
}

func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok {
		return m
	}
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
	return m
}

// flipNRGBA copies rows bottom to top.
func flipNRGBA(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := make([]byte, 0, w*h*4)
	for y := h - 1; y >= 0; y-- {
		start := y * img.Stride
		pix = append(pix, img.Pix[start:start+w*4]...)
	}
	return pix
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngChannels reports the channels a PNG stores, read from its IHDR colour
// type. A tRNS chunk adds an alpha channel.
func pngChannels(data []byte) (int, error) {
	if len(data) < 33 || !bytes.Equal(data[:8], pngSignature) || string(data[12:16]) != "IHDR" {
		return 0, fmt.Errorf("png: missing IHDR")
	}
	colorType := data[25]

	hasTRNS := false
	for off := 8; off+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[off : off+4]))
		kind := string(data[off+4 : off+8])
		if kind == "tRNS" {
			hasTRNS = true
		}
		if kind == "IDAT" || kind == "IEND" {
			break
		}
		off += 12 + n
	}

	var channels int
	switch colorType {
	case 0: // gray
		channels = 1
	case 2: // truecolor
		channels = 3
	case 3: // palette
		channels = 3
	case 4: // gray + alpha
		return 2, nil
	case 6: // truecolor + alpha
		return 4, nil
	default:
		return 0, fmt.Errorf("png: invalid colour type %d", colorType)
	}
	if hasTRNS {
		channels++
	}
	return channels, nil
}

// channelCount infers channels from the decoded image for formats whose
// header is not inspected. Colour images without transparency count as RGB.
func channelCount(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 3
		}
		return 4
	default:
		return 4
	}
}
