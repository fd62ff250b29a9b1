package mocks

import (
	"context"

	glpkg "github.com/sgaunet/issue-notify/pkg/gitlab"
)

// GitLabAPIClient is a mock implementation of gitlab.APIClient with call tracking.
type GitLabAPIClient struct {
	callTracker

	// Configurable responses
	SetProjectError    error
	CreateNoteResponse int64
	CreateNoteError    error
	EditNoteError      error
}

// NewGitLabAPIClient creates a new mock GitLab API client.
func NewGitLabAPIClient() *GitLabAPIClient {
	return &GitLabAPIClient{}
}

// SetProject implements gitlab.APIClient.
func (m *GitLabAPIClient) SetProject(path string) error {
	m.trackCall("SetProject", map[string]any{
		"path": path,
	})
	return m.SetProjectError
}

// CreateNote implements gitlab.APIClient.
func (m *GitLabAPIClient) CreateNote(_ context.Context, issue int64, body string) (int64, error) {
	m.trackCall("CreateNote", map[string]any{
		"issue": issue,
		"body":  body,
	})
	return m.CreateNoteResponse, m.CreateNoteError
}

// EditNote implements gitlab.APIClient.
func (m *GitLabAPIClient) EditNote(_ context.Context, issue, noteID int64, body string) error {
	m.trackCall("EditNote", map[string]any{
		"issue":  issue,
		"noteID": noteID,
		"body":   body,
	})
	return m.EditNoteError
}

// Ensure GitLabAPIClient implements gitlab.APIClient interface.
var _ glpkg.APIClient = (*GitLabAPIClient)(nil)
