package github

import "errors"

// Error definitions for GitHub API operations.
var (
	errTokenRequired    = errors.New("GitHub token is required")
	errInvalidRepo      = errors.New("invalid GitHub repository, expected owner/name")
	errRepoNotSet       = errors.New("GitHub repository is not set")
	errInvalidAPIURL    = errors.New("invalid GitHub API URL")
	errMissingCommentID = errors.New("GitHub response did not include a comment id")

	// ErrTokenRequired is returned when no token is supplied.
	ErrTokenRequired = errTokenRequired
	// ErrInvalidRepo is returned when the repository is not an owner/name slug.
	ErrInvalidRepo = errInvalidRepo
	// ErrRepoNotSet is returned when a comment call is made before SetRepository.
	ErrRepoNotSet = errRepoNotSet
	// ErrInvalidAPIURL is returned when the API URL cannot be parsed.
	ErrInvalidAPIURL = errInvalidAPIURL
	// ErrMissingCommentID is returned when a created comment has no id.
	ErrMissingCommentID = errMissingCommentID
)
