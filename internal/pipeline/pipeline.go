package pipeline

import (
	"fmt"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/cipher"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
)

// Options controls a file-to-file transform.
type Options struct {
	InputPath  string
	OutputPath string
	Params     cipher.Params
	Quality    int // JPEG quality (1-100)
}

// Result holds the output of a pipeline run.
type Result struct {
	OutputPath   string
	InputFormat  imageio.Format
	OutputFormat imageio.Format
	Width        int
	Height       int
	Transform    cipher.Transform
	AlphaDropped bool // output format cannot store the alpha the image uses
	Lossy        bool // reading the output back will not give the transformed pixels
}

// Run executes validate → decode → transform → encode. Every check that can
// fail without pixels runs before the input is decoded, and the output file
// is only written once the whole image has been transformed.
func Run(opts Options) (*Result, error) {
	log := Logger()

	// 1. Cheap checks: input exists, parameters are valid, output is writable.
	if err := imageio.CheckInput(opts.InputPath); err != nil {
		return nil, err
	}
	xform, err := cipher.NewTransform(opts.Params)
	if err != nil {
		return nil, err
	}
	outFormat, err := imageio.CheckWritable(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	// 2. Decode and normalize to RGBA
	decoded, err := imageio.Open(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	log.Debug("decoded input",
		"path", opts.InputPath, "format", decoded.Format,
		"width", decoded.Width, "height", decoded.Height)

	// 3. Transform every pixel
	log.Debug("applying transform", "transform", xform.String(), "mode", opts.Params.Mode, "workers", opts.Params.Workers)
	decoded.Pix = xform.ApplyAll(decoded.Pix, opts.Params.Workers)

	// 4. Encode
	alphaDropped := !outFormat.SupportsAlpha() && decoded.HasAlpha()
	if alphaDropped {
		log.Warn("output format has no alpha channel; alpha dropped", "format", outFormat)
	}
	lossy := !outFormat.Preserves(decoded.Buffer)
	if lossy {
		log.Warn("output format does not store these pixels exactly; the inverse will not restore the input", "format", outFormat)
	}
	if _, err := imageio.Save(opts.OutputPath, decoded.Buffer, imageio.EncoderOptions{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	log.Info("wrote output", "path", opts.OutputPath, "format", outFormat)

	return &Result{
		OutputPath:   opts.OutputPath,
		InputFormat:  decoded.Format,
		OutputFormat: outFormat,
		Width:        decoded.Width,
		Height:       decoded.Height,
		Transform:    xform,
		AlphaDropped: alphaDropped,
		Lossy:        lossy,
	}, nil
}
