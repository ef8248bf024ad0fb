package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrSizeMismatch is returned when raw pixel data does not match the
// declared dimensions.
var ErrSizeMismatch = errors.New("pixel data size mismatch")

// Buffer is a decoded raster passed between the image I/O layer and the
// cipher engine. Pix is in raster scan order, len(Pix) = Width * Height.
type Buffer struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewBuffer allocates a zeroed width x height buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// FromImage normalizes any image.Image into a Buffer of non-premultiplied
// RGBA pixels.
func FromImage(img image.Image) *Buffer {
	r := img.Bounds()
	b := NewBuffer(r.Dx(), r.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		i := 0
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := src.Pix[src.PixOffset(r.Min.X, y):]
			for x := 0; x < b.Width; x++ {
				o := x * 4
				b.Pix[i] = Pixel{R: row[o], G: row[o+1], B: row[o+2], A: row[o+3]}
				i++
			}
		}
		return b
	}

	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			b.Pix[i] = Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
			i++
		}
	}
	return b
}

// NRGBA returns the buffer as an *image.NRGBA anchored at the origin.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pix {
		o := i * 4
		img.Pix[o] = p.R
		img.Pix[o+1] = p.G
		img.Pix[o+2] = p.B
		img.Pix[o+3] = p.A
	}
	return img
}

// HasAlpha reports whether any pixel is not fully opaque.
func (b *Buffer) HasAlpha() bool {
	for _, p := range b.Pix {
		if p.A != Opaque {
			return true
		}
	}
	return false
}

// FromRaw parses interleaved 8-bit pixel data with the given channel count
// (3 for RGB, 4 for RGBA). data must be width*height*channels bytes.
func FromRaw(data []byte, width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d channels, want 3 or 4", ErrMalformedPixel, channels)
	}
	expected := width * height * channels
	if len(data) != expected {
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%d with %d channels, got %d",
			ErrSizeMismatch, expected, width, height, channels, len(data))
	}

	b := NewBuffer(width, height)
	for i := range b.Pix {
		p, err := FromChannels(data[i*channels : (i+1)*channels])
		if err != nil {
			return nil, fmt.Errorf("pixel %d: %w", i, err)
		}
		b.Pix[i] = p
	}
	return b, nil
}

// RGBA8 returns the buffer as interleaved R,G,B,A bytes.
func (b *Buffer) RGBA8() []byte {
	out := make([]byte, len(b.Pix)*4)
	for i, p := range b.Pix {
		o := i * 4
		out[o] = p.R
		out[o+1] = p.G
		out[o+2] = p.B
		out[o+3] = p.A
	}
	return out
}
