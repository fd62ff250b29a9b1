package mocks

import (
	"context"

	ghpkg "github.com/sgaunet/issue-notify/pkg/github"
)

// GitHubAPIClient is a mock implementation of github.APIClient with call tracking.
type GitHubAPIClient struct {
	callTracker

	// Configurable responses
	SetRepositoryError    error
	CreateCommentResponse int64
	CreateCommentError    error
	EditCommentError      error
}

// NewGitHubAPIClient creates a new mock GitHub API client.
func NewGitHubAPIClient() *GitHubAPIClient {
	return &GitHubAPIClient{}
}

// SetRepository implements github.APIClient.
func (m *GitHubAPIClient) SetRepository(slug string) error {
	m.trackCall("SetRepository", map[string]any{
		"slug": slug,
	})
	return m.SetRepositoryError
}

// CreateComment implements github.APIClient.
func (m *GitHubAPIClient) CreateComment(_ context.Context, issue int, body string) (int64, error) {
	m.trackCall("CreateComment", map[string]any{
		"issue": issue,
		"body":  body,
	})
	return m.CreateCommentResponse, m.CreateCommentError
}

// EditComment implements github.APIClient.
func (m *GitHubAPIClient) EditComment(_ context.Context, commentID int64, body string) error {
	m.trackCall("EditComment", map[string]any{
		"commentID": commentID,
		"body":      body,
	})
	return m.EditCommentError
}

// Ensure GitHubAPIClient implements github.APIClient interface.
var _ ghpkg.APIClient = (*GitHubAPIClient)(nil)
