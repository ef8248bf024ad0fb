package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	Format     Format
	Width      int
	Height     int
	ColorModel string
	HasAlpha   bool // any pixel is not fully opaque
}

// GetInfo reads the header for dimensions and color model, then decodes the
// pixels to find out whether alpha is actually used.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	dec, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return &ImageInfo{
		Format:     Format(name),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorModel: colorModelName(cfg.ColorModel),
		HasAlpha:   dec.HasAlpha(),
	}, nil
}

func colorModelName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel:
		return "Alpha"
	}
	return fmt.Sprintf("%T", m)
}
