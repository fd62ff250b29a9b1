package mocks

import (
	"context"

	"github.com/sgaunet/issue-notify/pkg/platform"
)

// PlatformProvider is a mock implementation of platform.Provider with call tracking.
type PlatformProvider struct {
	callTracker

	// Configurable responses
	CreateCommentResponse string
	CreateCommentError    error
	EditCommentError      error
	PlatformNameValue     string
}

// NewPlatformProvider creates a new mock platform provider.
func NewPlatformProvider() *PlatformProvider {
	return &PlatformProvider{
		CreateCommentResponse: "1001",
		PlatformNameValue:     "MockPlatform",
	}
}

// CreateComment implements platform.Provider.
func (m *PlatformProvider) CreateComment(_ context.Context, body string) (string, error) {
	m.trackCall("CreateComment", map[string]any{
		"body": body,
	})
	if m.CreateCommentError != nil {
		return "", m.CreateCommentError
	}
	return m.CreateCommentResponse, nil
}

// EditComment implements platform.Provider.
func (m *PlatformProvider) EditComment(_ context.Context, id, body string) error {
	m.trackCall("EditComment", map[string]any{
		"id":   id,
		"body": body,
	})
	return m.EditCommentError
}

// PlatformName implements platform.Provider.
func (m *PlatformProvider) PlatformName() string {
	return m.PlatformNameValue
}

// LastBody returns the body of the most recent create or edit call.
func (m *PlatformProvider) LastBody() string {
	calls := m.GetCalls()
	if len(calls) == 0 {
		return ""
	}
	body, _ := calls[len(calls)-1].Args["body"].(string)
	return body
}

// Ensure PlatformProvider implements platform.Provider interface.
var _ platform.Provider = (*PlatformProvider)(nil)
