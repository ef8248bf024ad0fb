package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/cipher"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

// RawOptions controls a transform over headerless interleaved pixel data.
type RawOptions struct {
	InputPath  string
	OutputPath string
	Width      int
	Height     int
	Channels   int // 3 (RGB8) or 4 (RGBA8); output is always RGBA8
	Params     cipher.Params
}

// RawMeta is the JSON sidecar written next to raw output.
type RawMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// RawResult describes the files written by RunRaw.
type RawResult struct {
	OutputPath string
	MetaPath   string
	Bytes      int
}

// SidecarPath returns the JSON path that accompanies a raw output file.
func SidecarPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, ".raw") + ".json"
}

// RunRaw transforms raw pixel data and writes RGBA8 output plus a sidecar.
// Either both files are written or neither is left behind.
func RunRaw(opts RawOptions) (*RawResult, error) {
	if err := imageio.CheckInput(opts.InputPath); err != nil {
		return nil, err
	}
	xform, err := cipher.NewTransform(opts.Params)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	buf, err := pixel.FromRaw(data, opts.Width, opts.Height, opts.Channels)
	if err != nil {
		return nil, err
	}

	buf.Pix = xform.ApplyAll(buf.Pix, opts.Params.Workers)
	out := buf.RGBA8()
	meta := RawMeta{Width: buf.Width, Height: buf.Height, Format: "RGBA8"}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := SidecarPath(opts.OutputPath)

	if err := os.WriteFile(opts.OutputPath, out, 0644); err != nil {
		return nil, fmt.Errorf("writing raw output: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		os.Remove(opts.OutputPath)
		return nil, fmt.Errorf("writing sidecar: %w", err)
	}
	Logger().Debug("wrote raw output", "path", opts.OutputPath, "sidecar", metaPath, "transform", xform.String())

	return &RawResult{OutputPath: opts.OutputPath, MetaPath: metaPath, Bytes: len(out)}, nil
}
