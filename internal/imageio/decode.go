package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

// Decoded is an image normalized to RGBA.
type Decoded struct {
	*pixel.Buffer
	Format Format
}

// CheckInput fails with ErrInputNotFound unless path is an existing regular file.
func CheckInput(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("checking input: %w", err)
	}
	if !st.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInputNotFound, path)
	}
	return nil
}

// Open reads and decodes the image at path.
func Open(path string) (*Decoded, error) {
	if err := CheckInput(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	dec, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return dec, nil
}

// Decode decodes any registered format from memory.
func Decode(data []byte) (*Decoded, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, err
	}
	return &Decoded{
		Buffer: pixel.FromImage(img),
		Format: Format(name),
	}, nil
}
