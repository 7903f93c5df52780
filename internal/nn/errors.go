package nn

import "errors"

// Common errors.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidInputSize     = errors.New("invalid input size")
	ErrNodeNotFound         = errors.New("node not found")
	ErrConnectionNotFound   = errors.New("connection not found")
)
