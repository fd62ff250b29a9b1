package platform

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sgaunet/bullets"

	ghclient "github.com/sgaunet/issue-notify/pkg/github"
)

// GitHubAdapter wraps a GitHub client to implement the [Provider] interface.
type GitHubAdapter struct {
	client ghclient.APIClient
	issue  int
	log    *bullets.Logger
}

// NewGitHubAdapter creates a new GitHub adapter for one issue.
func NewGitHubAdapter(client ghclient.APIClient, issue int, log *bullets.Logger) *GitHubAdapter {
	return &GitHubAdapter{
		client: client,
		issue:  issue,
		log:    log,
	}
}

// CreateComment posts a new issue comment.
func (a *GitHubAdapter) CreateComment(ctx context.Context, body string) (string, error) {
	id, err := a.client.CreateComment(ctx, a.issue, body)
	if err != nil {
		return "", fmt.Errorf("failed to create GitHub comment: %w", err)
	}
	a.log.Debug(fmt.Sprintf("Created GitHub comment %d on issue #%d", id, a.issue))
	return strconv.FormatInt(id, 10), nil
}

// EditComment edits an issue comment.
func (a *GitHubAdapter) EditComment(ctx context.Context, id, body string) error {
	commentID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := a.client.EditComment(ctx, commentID, body); err != nil {
		return fmt.Errorf("failed to edit GitHub comment: %w", err)
	}
	return nil
}

// PlatformName returns "GitHub".
func (a *GitHubAdapter) PlatformName() string {
	return "GitHub"
}

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCommentID, id)
	}
	return n, nil
}

var _ Provider = (*GitHubAdapter)(nil)
