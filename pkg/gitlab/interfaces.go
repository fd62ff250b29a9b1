package gitlab

import "context"

// APIClient defines the GitLab operations used by the notifiers.
type APIClient interface {
	// SetProject selects the project from its full path, e.g. "group/sub/project".
	SetProject(path string) error

	// CreateNote posts a new note on an issue and returns its id.
	CreateNote(ctx context.Context, issue int64, body string) (int64, error)

	// EditNote replaces the body of an existing issue note.
	EditNote(ctx context.Context, issue, noteID int64, body string) error
}

// Ensure Client implements APIClient interface at compile time.
var _ APIClient = (*Client)(nil)
