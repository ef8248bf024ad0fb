package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 95

// EncoderOptions controls output encoding.
type EncoderOptions struct {
	Quality int // JPEG quality (1-100), 0 means DefaultQuality
}

func (o EncoderOptions) quality() int {
	q := o.Quality
	if q == 0 {
		return DefaultQuality
	}
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}

// Encode writes buf to w in format f. Formats without alpha drop it; GIF is
// quantized to the Plan 9 palette.
func Encode(w io.Writer, buf *pixel.Buffer, f Format, opts EncoderOptions) error {
	switch f {
	case PNG:
		return png.Encode(w, buf.NRGBA())
	case JPEG:
		return jpeg.Encode(w, dropAlpha(buf), &jpeg.Options{Quality: opts.quality()})
	case GIF:
		return gif.Encode(w, dropAlpha(buf), nil)
	case BMP:
		return bmp.Encode(w, dropAlpha(buf))
	case TIFF:
		return tiff.Encode(w, buf.NRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}
}

// Save encodes buf into the format implied by path and writes the file.
// Nothing is written if encoding fails.
func Save(path string, buf *pixel.Buffer, opts EncoderOptions) (Format, error) {
	f, err := CheckWritable(path)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := Encode(&out, buf, f, opts); err != nil {
		return "", fmt.Errorf("encoding %s: %w", f, err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing output: %w", err)
	}
	return f, nil
}

// dropAlpha keeps R, G and B as stored and forces every pixel opaque.
func dropAlpha(buf *pixel.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i, p := range buf.Pix {
		o := i * 4
		img.Pix[o] = p.R
		img.Pix[o+1] = p.G
		img.Pix[o+2] = p.B
		img.Pix[o+3] = pixel.Opaque
	}
	return img
}
