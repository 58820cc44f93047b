package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrNotFound      = errors.New("input file not found")
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidValue  = errors.New("invalid value")
)
