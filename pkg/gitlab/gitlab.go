package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sgaunet/bullets"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/sgaunet/issue-notify/internal/logger"
	"github.com/sgaunet/issue-notify/internal/security"
)

// Options configures a Client.
type Options struct {
	// Token is the personal, project or job access token.
	Token security.SecureToken
	// APIURL overrides https://gitlab.com/api/v4/.
	APIURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	// Transport is the base transport, defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

// Client represents a GitLab API client wrapper bound to one project.
type Client struct {
	client  *gitlab.Client
	project string
	log     *bullets.Logger
}

// NewClient creates a GitLab client. Retries are disabled: a failed note is
// reported once and the task continues.
func NewClient(opts Options) (*Client, error) {
	if opts.Token.IsEmpty() {
		return nil, errTokenRequired
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	clientOpts := []gitlab.ClientOptionFunc{
		gitlab.WithHTTPClient(&http.Client{Transport: transport, Timeout: opts.Timeout}),
		gitlab.WithoutRetries(),
	}
	if opts.APIURL != "" {
		clientOpts = append(clientOpts, gitlab.WithBaseURL(opts.APIURL))
	}

	client, err := gitlab.NewClient(opts.Token.Value(), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &Client{
		client: client,
		log:    logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the GitLab client.
func (c *Client) SetLogger(log *bullets.Logger) {
	if log != nil {
		c.log = log
	}
}

// SetProject selects the project from its full path.
func (c *Client) SetProject(path string) error {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if !strings.Contains(path, "/") {
		return fmt.Errorf("%w: %q", errInvalidProject, path)
	}
	c.project = path
	c.log.Debug("GitLab project set: " + path)
	return nil
}

// CreateNote posts body as a new note on issue and returns the note id.
func (c *Client) CreateNote(ctx context.Context, issue int64, body string) (int64, error) {
	if c.project == "" {
		return 0, errProjectNotSet
	}
	c.log.Debug(fmt.Sprintf("Creating note on %s#%d", c.project, issue))

	note, _, err := c.client.Notes.CreateIssueNote(c.project, int(issue), &gitlab.CreateIssueNoteOptions{
		Body: gitlab.Ptr(body),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to create note: %w", err)
	}
	if note == nil || note.ID == 0 {
		return 0, errMissingNoteID
	}

	c.log.Debug(fmt.Sprintf("Note created - id: %d", note.ID))
	return int64(note.ID), nil
}

// EditNote replaces the body of an existing issue note.
func (c *Client) EditNote(ctx context.Context, issue, noteID int64, body string) error {
	if c.project == "" {
		return errProjectNotSet
	}
	c.log.Debug(fmt.Sprintf("Updating note %d on %s#%d", noteID, c.project, issue))

	_, _, err := c.client.Notes.UpdateIssueNote(c.project, int(issue), int(noteID), &gitlab.UpdateIssueNoteOptions{
		Body: gitlab.Ptr(body),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to update note %d: %w", noteID, err)
	}

	c.log.Debug("Note updated successfully")
	return nil
}
