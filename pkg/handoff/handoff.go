// Package handoff persists the state passed from the start step to the
// completion or failure step of a task run.
//
// The state is two values: the identifier of the status comment and the time
// the task started. [FileStore] keeps them in two plain-text files so that
// separate process invocations can share them; [MemoryStore] keeps them in
// memory for tests and dry runs.
package handoff

import "time"

// State is the value handed from start to completion/failure.
type State struct {
	// CommentID identifies the status comment. Empty means there is no comment
	// to update, either because start failed or never ran.
	CommentID string
	// StartedAt is the task start time in UTC.
	StartedAt time.Time
}

// HasComment reports whether a comment is available for update.
func (s State) HasComment() bool {
	return s.CommentID != ""
}

// Store reads and writes hand-off state.
type Store interface {
	// Save replaces the stored state.
	Save(state State) error

	// Load returns the stored state.
	// Returns ErrNoState when nothing was saved, ErrCorruptTimestamp when the
	// start time cannot be parsed.
	Load() (State, error)

	// Exists reports whether any state was saved.
	Exists() bool
}
