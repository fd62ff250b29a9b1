package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrInvalidCommentID is returned when a stored comment id is not numeric.
	ErrInvalidCommentID = errors.New("invalid comment id")

	// ErrUnsupportedPlatform is returned when the configured platform has no adapter.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
