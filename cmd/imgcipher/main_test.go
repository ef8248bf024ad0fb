package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/cipher"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := pixel.NewBuffer(2, 1)
	src.Pix[0] = pixel.Pixel{100, 150, 200, 255}
	src.Pix[1] = pixel.Pixel{250, 10, 5, 128}
	in := filepath.Join(dir, "in.png")
	_, err := imageio.Save(in, src, imageio.EncoderOptions{})
	require.NoError(t, err)

	enc := filepath.Join(dir, "enc.png")
	out, err := execute(t, "apply", "-i", in, "-o", enc, "-m", "encrypt", "--op", "xor", "-k", "37")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully wrote "+enc)

	mid, err := imageio.Open(enc)
	require.NoError(t, err)
	assert.Equal(t, pixel.Pixel{65, 179, 237, 255}, mid.Pix[0])

	dec := filepath.Join(dir, "dec.png")
	_, err = execute(t, "apply", "-i", enc, "-o", dec, "-m", "decrypt", "--op", "xor", "-k", "37")
	require.NoError(t, err)
	back, err := imageio.Open(dec)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, back.Pix)

	out, err = execute(t, "identify", dec)
	require.NoError(t, err)
	assert.Contains(t, out, "Dimensions:  2 x 1")
	assert.Contains(t, out, "Alpha used:  true")

	out, err = execute(t, "verify", "-i", in, "--op", "add", "-k", "10", "--format", "png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Round trip OK"), out)
}

func TestApplyErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	_, err := imageio.Save(in, pixel.NewBuffer(1, 1), imageio.EncoderOptions{})
	require.NoError(t, err)
	out := filepath.Join(dir, "out.png")

	_, err = execute(t, "apply", "-i", in, "-o", out, "-m", "encrypt", "--op", "add", "-k", "1.5")
	assert.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, err = execute(t, "apply", "-i", in, "-o", out, "-m", "encrypt", "--op", "swap", "-k", "", "-s", "gr")
	assert.ErrorIs(t, err, cipher.ErrInvalidSwapSelector)

	_, err = execute(t, "apply", "-i", in, "-o", out, "-m", "sideways", "--op", "xor", "-k", "1", "-s", "")
	assert.ErrorIs(t, err, cipher.ErrUnknownMode)

	_, err = execute(t, "apply", "-i", filepath.Join(dir, "none.png"), "-o", out, "-m", "encrypt", "--op", "xor", "-k", "1")
	assert.ErrorIs(t, err, imageio.ErrInputNotFound)
}
