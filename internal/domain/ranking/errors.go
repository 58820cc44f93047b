package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrUnknownTieMethod = errors.New("unknown tie method")
)
