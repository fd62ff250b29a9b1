package notify

import "errors"

// Sentinel errors reported in a [Result].
var (
	// ErrEmptyCommentID is returned when the platform accepted a comment but
	// reported no identifier for it.
	ErrEmptyCommentID = errors.New("platform returned an empty comment id")

	// ErrNoProvider is returned when the notifier was built without a provider factory.
	ErrNoProvider = errors.New("no provider configured")

	// ErrSaveState is recorded when the hand-off state could not be written.
	ErrSaveState = errors.New("failed to write hand-off state")
)
