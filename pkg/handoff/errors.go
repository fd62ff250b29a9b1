package handoff

import "errors"

// Error definitions for hand-off state.
var (
	errNoState          = errors.New("no hand-off state")
	errCorruptTimestamp = errors.New("corrupt start time in hand-off state")

	// ErrNoState is returned by Load when the comment identifier was never written.
	ErrNoState = errNoState
	// ErrCorruptTimestamp is returned by Load when the start time is missing or unparsable.
	ErrCorruptTimestamp = errCorruptTimestamp
)
