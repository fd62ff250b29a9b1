package github

import "context"

// APIClient defines the GitHub operations used by the notifiers.
// It allows mock implementations to replace the real API client in tests.
type APIClient interface {
	// SetRepository selects the repository from an "owner/name" slug.
	SetRepository(slug string) error

	// CreateComment posts a new comment on an issue and returns its id.
	CreateComment(ctx context.Context, issue int, body string) (int64, error)

	// EditComment replaces the body of an existing issue comment.
	EditComment(ctx context.Context, commentID int64, body string) error
}

// Ensure Client implements APIClient interface at compile time.
var _ APIClient = (*Client)(nil)
