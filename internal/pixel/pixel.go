// Package pixel holds the RGBA8 pixel value and the raster buffer shared by
// the cipher engine and the image I/O layer.
package pixel

import (
	"errors"
	"fmt"
)

// ErrMalformedPixel is returned when a channel tuple has neither 3 nor 4 values.
var ErrMalformedPixel = errors.New("malformed pixel")

// Opaque is the alpha value given to pixels that arrive without an alpha channel.
const Opaque = 255

// Pixel is a single non-premultiplied RGBA sample, 8 bits per channel.
type Pixel struct {
	R, G, B, A uint8
}

// FromChannels builds a Pixel from 3 (R,G,B) or 4 (R,G,B,A) channel values.
// A 3-channel tuple gets A = Opaque.
func FromChannels(ch []uint8) (Pixel, error) {
	switch len(ch) {
	case 3:
		return Pixel{R: ch[0], G: ch[1], B: ch[2], A: Opaque}, nil
	case 4:
		return Pixel{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	default:
		return Pixel{}, fmt.Errorf("%w: %d channels, want 3 or 4", ErrMalformedPixel, len(ch))
	}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.R, p.G, p.B, p.A)
}
