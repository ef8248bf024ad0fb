// Package imageio decodes image files into pixel buffers and encodes them
// back, choosing the output format from the file extension.
package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

var (
	ErrInputNotFound     = errors.New("input image not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Format identifies an image container.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	WebP Format = "webp"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".webp":
		return WebP, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// SupportsAlpha reports whether a saved image keeps its alpha channel.
// BMP and GIF are written opaque.
func (f Format) SupportsAlpha() bool {
	switch f {
	case PNG, TIFF, WebP:
		return true
	default:
		return false
	}
}

// CanEncode reports whether Encode can write this format.
func (f Format) CanEncode() bool {
	switch f {
	case PNG, JPEG, GIF, BMP, TIFF:
		return true
	default:
		return false
	}
}

// Lossless reports whether a write/read cycle reproduces R, G and B exactly.
func (f Format) Lossless() bool {
	switch f {
	case PNG, BMP, TIFF:
		return true
	default:
		return false
	}
}

// Preserves reports whether saving buf in this format and reading it back
// yields the same pixels.
func (f Format) Preserves(buf *pixel.Buffer) bool {
	if !f.Lossless() {
		return false
	}
	return f.SupportsAlpha() || !buf.HasAlpha()
}

// CheckWritable returns ErrUnsupportedFormat if path cannot be encoded.
func CheckWritable(path string) (Format, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}
	if !f.CanEncode() {
		return "", fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}
	return f, nil
}
