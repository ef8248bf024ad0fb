package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/pixel"
)

func mustTransform(t *testing.T, p Params) Transform {
	t.Helper()
	tr, err := NewTransform(p)
	require.NoError(t, err)
	return tr
}

func TestResolve(t *testing.T) {
	tests := []struct {
		op   Operation
		mode Mode
		want Step
	}{
		{OpXor, Encrypt, StepXor},
		{OpXor, Decrypt, StepXor},
		{OpAdd, Encrypt, StepAdd},
		{OpAdd, Decrypt, StepSub},
		{OpSub, Encrypt, StepSub},
		{OpSub, Decrypt, StepAdd},
		{OpSwap, Encrypt, StepSwap},
		{OpSwap, Decrypt, StepSwap},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.op, tt.mode)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v/%v", tt.op, tt.mode)
	}

	_, err := Resolve(Operation(0), Encrypt)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestApplyScenarios(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		in     pixel.Pixel
		want   pixel.Pixel
	}{
		{"xor 37", Params{Op: OpXor, Mode: Encrypt, Key: Key(37)}, pixel.Pixel{100, 150, 200, 255}, pixel.Pixel{65, 179, 237, 255}},
		{"xor 37 back", Params{Op: OpXor, Mode: Decrypt, Key: Key(37)}, pixel.Pixel{65, 179, 237, 255}, pixel.Pixel{100, 150, 200, 255}},
		{"add wraps", Params{Op: OpAdd, Mode: Encrypt, Key: Key(10)}, pixel.Pixel{250, 10, 5, 255}, pixel.Pixel{4, 20, 15, 255}},
		{"add decrypt", Params{Op: OpAdd, Mode: Decrypt, Key: Key(10)}, pixel.Pixel{4, 20, 15, 255}, pixel.Pixel{250, 10, 5, 255}},
		{"sub wraps below zero", Params{Op: OpSub, Mode: Encrypt, Key: Key(10)}, pixel.Pixel{5, 0, 200, 7}, pixel.Pixel{251, 246, 190, 7}},
		{"sub decrypt", Params{Op: OpSub, Mode: Decrypt, Key: Key(10)}, pixel.Pixel{251, 246, 190, 7}, pixel.Pixel{5, 0, 200, 7}},
		{"swap rb", Params{Op: OpSwap, Mode: Encrypt, Swap: SwapRB}, pixel.Pixel{1, 2, 3, 255}, pixel.Pixel{3, 2, 1, 255}},
		{"swap rg", Params{Op: OpSwap, Mode: Encrypt, Swap: SwapRG}, pixel.Pixel{1, 2, 3, 9}, pixel.Pixel{2, 1, 3, 9}},
		{"swap gb", Params{Op: OpSwap, Mode: Decrypt, Swap: SwapGB}, pixel.Pixel{1, 2, 3, 0}, pixel.Pixel{1, 3, 2, 0}},
		{"key 0 is identity", Params{Op: OpAdd, Mode: Encrypt, Key: Key(0)}, pixel.Pixel{1, 2, 3, 4}, pixel.Pixel{1, 2, 3, 4}},
		{"key 255", Params{Op: OpXor, Mode: Encrypt, Key: Key(255)}, pixel.Pixel{0, 255, 15, 128}, pixel.Pixel{255, 0, 240, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustTransform(t, tt.params).Apply(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizedThenTransformed(t *testing.T) {
	p, err := pixel.FromChannels([]uint8{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, pixel.Pixel{10, 20, 30, 255}, p)

	got := mustTransform(t, Params{Op: OpSwap, Mode: Encrypt, Swap: SwapRB}).Apply(p)
	assert.Equal(t, pixel.Pixel{30, 20, 10, 255}, got)
}

// Every key and every channel value survives encrypt then decrypt, and
// alpha is never touched.
func TestMathRoundTripExhaustive(t *testing.T) {
	for _, op := range []Operation{OpXor, OpAdd, OpSub} {
		for k := MinKey; k <= MaxKey; k++ {
			enc := mustTransform(t, Params{Op: op, Mode: Encrypt, Key: Key(k)})
			dec := mustTransform(t, Params{Op: op, Mode: Decrypt, Key: Key(k)})
			for c := 0; c < 256; c++ {
				in := pixel.Pixel{R: uint8(c), G: uint8(255 - c), B: uint8(c * 7), A: uint8(c * 3)}
				mid := enc.Apply(in)
				if mid.A != in.A {
					t.Fatalf("%v key=%d changed alpha: %v -> %v", op, k, in, mid)
				}
				if out := dec.Apply(mid); out != in {
					t.Fatalf("%v key=%d: %v -> %v -> %v", op, k, in, mid, out)
				}
			}
		}
	}
}

func TestSwapSelfInverse(t *testing.T) {
	in := pixel.Pixel{11, 22, 33, 44}
	for _, pair := range []SwapPair{SwapRG, SwapRB, SwapGB} {
		for _, mode := range []Mode{Encrypt, Decrypt} {
			tr := mustTransform(t, Params{Op: OpSwap, Mode: mode, Swap: pair})
			mid := tr.Apply(in)
			assert.NotEqual(t, in, mid, "%v", pair)
			assert.Equal(t, in.A, mid.A)
			assert.Equal(t, in, tr.Apply(mid), "%v", pair)
		}
	}
}

func TestNewTransformRejects(t *testing.T) {
	_, err := NewTransform(Params{Op: OpAdd, Mode: Encrypt, Key: Key(256)})
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = NewTransform(Params{Op: OpSwap, Mode: Encrypt})
	assert.ErrorIs(t, err, ErrInvalidSwapSelector)
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "sub key=9", mustTransform(t, Params{Op: OpAdd, Mode: Decrypt, Key: Key(9)}).String())
	assert.Equal(t, "swap gb", mustTransform(t, Params{Op: OpSwap, Mode: Encrypt, Swap: SwapGB}).String())
}
