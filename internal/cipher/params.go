package cipher

import "fmt"

// Keys for xor, add and sub must lie in [MinKey, MaxKey].
const (
	MinKey = 0
	MaxKey = 255
)

// Params describes a single transform request.
type Params struct {
	Op   Operation
	Mode Mode
	Key  *int     // required for xor, add, sub
	Swap SwapPair // required for swap

	// Workers bounds batch parallelism. Zero means GOMAXPROCS, one
	// forces a sequential scan.
	Workers int
}

// Validate checks the request without looking at any pixels.
func (p Params) Validate() error {
	if p.Mode != Encrypt && p.Mode != Decrypt {
		return fmt.Errorf("%w: %v", ErrUnknownMode, p.Mode)
	}
	switch {
	case p.Op.needsKey():
		return validateKey(p.Key)
	case p.Op == OpSwap:
		if !p.Swap.valid() {
			if p.Swap == SwapNone {
				return fmt.Errorf("%w: swap needs a selector (rg, rb or gb)", ErrInvalidSwapSelector)
			}
			return fmt.Errorf("%w: %v", ErrInvalidSwapSelector, p.Swap)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOperation, p.Op)
	}
}

func validateKey(k *int) error {
	if k == nil {
		return fmt.Errorf("%w: need a key value (%d-%d) for this operation", ErrInvalidKey, MinKey, MaxKey)
	}
	if *k < MinKey || *k > MaxKey {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidKey, *k, MinKey, MaxKey)
	}
	return nil
}
