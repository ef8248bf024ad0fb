package cipher

import "errors"

// Validation errors. Any of these aborts a transform before a pixel is touched.
var (
	ErrInvalidKey          = errors.New("invalid key")
	ErrInvalidSwapSelector = errors.New("invalid swap selector")
	ErrUnknownOperation    = errors.New("unknown operation")
	ErrUnknownMode         = errors.New("unknown mode")
)
