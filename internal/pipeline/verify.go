package pipeline

import (
	"bytes"
	"fmt"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/cipher"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

// VerifyOptions configures a round-trip check. Params.Mode is the direction
// applied first; the inverse is applied second.
type VerifyOptions struct {
	InputPath string
	Params    cipher.Params
	Format    imageio.Format // optional: also round-trip through this codec
	Quality   int
}

// VerifyResult reports how many pixels failed to come back unchanged.
type VerifyResult struct {
	Pixels     int
	Mismatches int

	// Set only when VerifyOptions.Format is given.
	Format           imageio.Format
	FormatLossless   bool // Format can store the encrypted pixels exactly
	FormatMismatches int
}

// OK reports whether both checks reproduced the input exactly.
func (r *VerifyResult) OK() bool {
	return r.Mismatches == 0 && r.FormatMismatches == 0
}

// Verify applies the transform and its inverse to the decoded input and
// counts differing pixels. In-memory the count is always zero; saving the
// intermediate through a lossy codec or one without alpha is what breaks it.
func Verify(opts VerifyOptions) (*VerifyResult, error) {
	if opts.Params.Mode == 0 {
		opts.Params.Mode = cipher.Encrypt
	}
	fwd, err := cipher.NewTransform(opts.Params)
	if err != nil {
		return nil, err
	}
	inv := opts.Params
	inv.Mode = opts.Params.Mode.Inverse()
	back, err := cipher.NewTransform(inv)
	if err != nil {
		return nil, err
	}
	if opts.Format != "" && !opts.Format.CanEncode() {
		return nil, fmt.Errorf("%w: cannot write %s", imageio.ErrUnsupportedFormat, opts.Format)
	}

	decoded, err := imageio.Open(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	workers := opts.Params.Workers
	mid := fwd.ApplyAll(decoded.Pix, workers)
	res := &VerifyResult{
		Pixels:     len(decoded.Pix),
		Mismatches: countMismatches(decoded.Pix, back.ApplyAll(mid, workers)),
	}

	if opts.Format != "" {
		var buf bytes.Buffer
		midBuf := &pixel.Buffer{Width: decoded.Width, Height: decoded.Height, Pix: mid}
		if err := imageio.Encode(&buf, midBuf, opts.Format, imageio.EncoderOptions{Quality: opts.Quality}); err != nil {
			return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
		}
		reloaded, err := imageio.Decode(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", opts.Format, err)
		}
		res.Format = opts.Format
		res.FormatLossless = opts.Format.Preserves(midBuf)
		res.FormatMismatches = countMismatches(decoded.Pix, back.ApplyAll(reloaded.Pix, workers))
	}

	Logger().Debug("verified round trip",
		"transform", fwd.String(), "pixels", res.Pixels,
		"mismatches", res.Mismatches, "format", res.Format, "format_mismatches", res.FormatMismatches)
	return res, nil
}

func countMismatches(a, b []pixel.Pixel) int {
	if len(a) != len(b) {
		return max(len(a), len(b))
	}
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
