package platform

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sgaunet/bullets"

	"github.com/sgaunet/issue-notify/pkg/gitlab"
)

// GitLabAdapter wraps a GitLab client to implement the [Provider] interface.
// Comments are issue notes; editing a note needs the issue iid as well as the note id.
type GitLabAdapter struct {
	client gitlab.APIClient
	issue  int64
	log    *bullets.Logger
}

// NewGitLabAdapter creates a new GitLab adapter for one issue.
func NewGitLabAdapter(client gitlab.APIClient, issue int64, log *bullets.Logger) *GitLabAdapter {
	return &GitLabAdapter{
		client: client,
		issue:  issue,
		log:    log,
	}
}

// CreateComment posts a new issue note.
func (a *GitLabAdapter) CreateComment(ctx context.Context, body string) (string, error) {
	id, err := a.client.CreateNote(ctx, a.issue, body)
	if err != nil {
		return "", fmt.Errorf("failed to create GitLab note: %w", err)
	}
	a.log.Debug(fmt.Sprintf("Created GitLab note %d on issue #%d", id, a.issue))
	return strconv.FormatInt(id, 10), nil
}

// EditComment edits an issue note.
func (a *GitLabAdapter) EditComment(ctx context.Context, id, body string) error {
	noteID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := a.client.EditNote(ctx, a.issue, noteID, body); err != nil {
		return fmt.Errorf("failed to edit GitLab note: %w", err)
	}
	return nil
}

// PlatformName returns "GitLab".
func (a *GitLabAdapter) PlatformName() string {
	return "GitLab"
}

var _ Provider = (*GitLabAdapter)(nil)
