package platform

import "context"

// Provider defines the comment operations shared by GitHub and GitLab.
// Comment ids are opaque strings so they can be stored in the hand-off state as is.
type Provider interface {
	// CreateComment posts a new comment on the configured issue and returns its id.
	CreateComment(ctx context.Context, body string) (string, error)

	// EditComment replaces the body of the comment identified by id.
	EditComment(ctx context.Context, id, body string) error

	// PlatformName returns "GitHub", "GitLab" or "DryRun".
	PlatformName() string
}
