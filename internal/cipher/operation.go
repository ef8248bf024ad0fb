// Package cipher implements reversible per-pixel image transforms: XOR,
// modular add and subtract over the R, G and B channels, and channel-pair
// swaps. Alpha is never modified.
//
// None of this is cryptographically meaningful. The key is a single byte
// and every operation is trivially invertible.
package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation selects one of the four reversible transforms.
type Operation uint8

const (
	OpXor Operation = iota + 1
	OpAdd
	OpSub
	OpSwap
)

// ParseOperation converts an operation name (xor, add, sub, swap).
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "xor":
		return OpXor, nil
	case "add":
		return OpAdd, nil
	case "sub":
		return OpSub, nil
	case "swap":
		return OpSwap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

func (o Operation) String() string {
	switch o {
	case OpXor:
		return "xor"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpSwap:
		return "swap"
	default:
		return "Operation(" + strconv.Itoa(int(o)) + ")"
	}
}

// needsKey reports whether the operation is one of the keyed math operations.
func (o Operation) needsKey() bool {
	return o == OpXor || o == OpAdd || o == OpSub
}

// Mode is the direction of a transform.
type Mode uint8

const (
	Encrypt Mode = iota + 1
	Decrypt
)

// ParseMode converts "encrypt" or "decrypt".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q (want encrypt or decrypt)", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Inverse returns the opposite direction.
func (m Mode) Inverse() Mode {
	if m == Decrypt {
		return Encrypt
	}
	return Decrypt
}

// SwapPair names the two channels exchanged by OpSwap. The zero value
// SwapNone means no selector was given.
type SwapPair uint8

const (
	SwapNone SwapPair = iota
	SwapRG
	SwapRB
	SwapGB
)

// ParseSwapPair converts rg, rb or gb. An empty string yields SwapNone,
// which only fails later if a swap is actually requested.
func ParseSwapPair(s string) (SwapPair, error) {
	switch s {
	case "":
		return SwapNone, nil
	case "rg":
		return SwapRG, nil
	case "rb":
		return SwapRB, nil
	case "gb":
		return SwapGB, nil
	default:
		return SwapNone, fmt.Errorf("%w: %q (want rg, rb or gb)", ErrInvalidSwapSelector, s)
	}
}

func (s SwapPair) String() string {
	switch s {
	case SwapNone:
		return "none"
	case SwapRG:
		return "rg"
	case SwapRB:
		return "rb"
	case SwapGB:
		return "gb"
	default:
		return "SwapPair(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s SwapPair) valid() bool {
	return s == SwapRG || s == SwapRB || s == SwapGB
}

// ParseKey parses a decimal key. An empty string means no key was given
// and returns nil. Anything that is not a plain integer is ErrInvalidKey;
// the range check happens in Params.Validate.
func ParseKey(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	k, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidKey, s)
	}
	return &k, nil
}

// Key returns a pointer to k, for building Params literals.
func Key(k int) *int {
	return &k
}
