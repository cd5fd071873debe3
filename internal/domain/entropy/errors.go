package entropy

import "errors"

// Sentinel kinds for entropy errors.
var (
	ErrUnavailable = errors.New("entropy source unavailable")
)
