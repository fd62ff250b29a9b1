// Package github posts and edits issue comments through the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
	"golang.org/x/oauth2"

	"github.com/sgaunet/issue-notify/internal/logger"
	"github.com/sgaunet/issue-notify/internal/security"
	"github.com/sgaunet/issue-notify/internal/urlutil"
)

// MediaType is sent as the Accept header on every request.
const MediaType = "application/vnd.github+json"

// Options configures a Client.
type Options struct {
	// Token is the bearer credential.
	Token security.SecureToken
	// APIURL overrides https://api.github.com/, e.g. https://ghe.example.com/api/v3/.
	APIURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	// Transport is the base transport, defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

// Client represents a GitHub API client wrapper bound to one repository.
type Client struct {
	client *github.Client
	owner  string
	repo   string
	log    *bullets.Logger
}

// NewClient creates a GitHub client authenticating with a static bearer token.
func NewClient(opts Options) (*Client, error) {
	if opts.Token.IsEmpty() {
		return nil, errTokenRequired
	}

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Transport: &acceptTransport{base: base},
	})
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: opts.Token.Value()},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = opts.Timeout

	client := github.NewClient(tc)
	if opts.APIURL != "" {
		baseURL, err := parseAPIURL(opts.APIURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = baseURL
	}

	return &Client{
		client: client,
		log:    logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the GitHub client.
func (c *Client) SetLogger(log *bullets.Logger) {
	if log != nil {
		c.log = log
	}
}

// SetRepository selects the repository from an "owner/name" slug.
func (c *Client) SetRepository(slug string) error {
	owner, repo, ok := urlutil.SplitOwnerRepo(slug)
	if !ok {
		return fmt.Errorf("%w: %q", errInvalidRepo, slug)
	}
	c.owner = owner
	c.repo = repo
	c.log.Debug(fmt.Sprintf("GitHub repository set: %s/%s", owner, repo))
	return nil
}

// CreateComment posts body as a new comment on issue and returns the comment id.
func (c *Client) CreateComment(ctx context.Context, issue int, body string) (int64, error) {
	if c.owner == "" {
		return 0, errRepoNotSet
	}
	c.log.Debug(fmt.Sprintf("POST %srepos/%s/%s/issues/%d/comments", c.client.BaseURL, c.owner, c.repo, issue))

	comment, _, err := c.client.Issues.CreateComment(ctx, c.owner, c.repo, issue, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}
	if comment.GetID() == 0 {
		return 0, errMissingCommentID
	}

	c.log.Debug(fmt.Sprintf("Comment created - id: %d, URL: %s", comment.GetID(), comment.GetHTMLURL()))
	return comment.GetID(), nil
}

// EditComment replaces the body of an existing issue comment.
func (c *Client) EditComment(ctx context.Context, commentID int64, body string) error {
	if c.owner == "" {
		return errRepoNotSet
	}
	c.log.Debug(fmt.Sprintf("PATCH %srepos/%s/%s/issues/comments/%d", c.client.BaseURL, c.owner, c.repo, commentID))

	_, _, err := c.client.Issues.EditComment(ctx, c.owner, c.repo, commentID, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("failed to edit comment %d: %w", commentID, err)
	}

	c.log.Debug("Comment updated successfully")
	return nil
}

// parseAPIURL parses an API base URL and makes sure it ends with a slash,
// which go-github requires for relative request paths.
func parseAPIURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", errInvalidAPIURL, raw)
	}
	return u, nil
}

// acceptTransport sets the Accept header expected by the REST API.
type acceptTransport struct {
	base http.RoundTripper
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", MediaType)
	return t.base.RoundTrip(req) //nolint:wrapcheck // transport errors are wrapped by the caller
}
