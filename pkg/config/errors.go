package config

import "errors"

// Error definitions for configuration loading and validation.
var (
	errConfigParse         = errors.New("failed to parse config file")
	errEnvFile             = errors.New("failed to read env file")
	errInvalidTimeout      = errors.New("invalid timeout")
	errRepositoryRequired  = errors.New("REPO is not set and could not be derived from the git remote")
	errInvalidRepository   = errors.New("REPO must have the form owner/name")
	errInvalidIssue        = errors.New("ISSUE_NUM must be a positive integer")
	errTokenRequired       = errors.New("API token is not set")
	errUnsupportedPlatform = errors.New("unsupported platform")

	// ErrConfigParse is returned when the YAML config file is malformed.
	ErrConfigParse = errConfigParse
	// ErrEnvFile is returned when an explicitly requested env file cannot be read.
	ErrEnvFile = errEnvFile
	// ErrInvalidTimeout is returned for a timeout that is not a positive Go duration.
	ErrInvalidTimeout = errInvalidTimeout
	// ErrRepositoryRequired is returned by Validate when no repository is known.
	ErrRepositoryRequired = errRepositoryRequired
	// ErrInvalidRepository is returned by Validate for a malformed repository slug.
	ErrInvalidRepository = errInvalidRepository
	// ErrInvalidIssue is returned by Validate for a missing or non-positive issue number.
	ErrInvalidIssue = errInvalidIssue
	// ErrTokenRequired is returned by Validate when no credential is set.
	ErrTokenRequired = errTokenRequired
	// ErrUnsupportedPlatform is returned for a platform other than github or gitlab.
	ErrUnsupportedPlatform = errUnsupportedPlatform
)
