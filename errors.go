package hospitalrank

import "errors"

// Sentinel errors for the two recognized argument failures plus the
// documented policy for malformed rank requests. Callers match with
// errors.Is; the wrapped message carries the offending value.
var (
	ErrInvalidOutcome = errors.New("invalid outcome")
	ErrInvalidState   = errors.New("invalid state")
	ErrInvalidRank    = errors.New("invalid rank")
)
