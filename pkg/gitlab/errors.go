// Package gitlab posts and edits issue notes through the GitLab REST API.
package gitlab

import "errors"

// Error definitions for GitLab API operations.
var (
	errTokenRequired  = errors.New("GitLab token is required")
	errInvalidProject = errors.New("invalid GitLab project path")
	errProjectNotSet  = errors.New("GitLab project is not set")
	errMissingNoteID  = errors.New("GitLab response did not include a note id")

	// ErrTokenRequired is returned when no token is supplied.
	ErrTokenRequired = errTokenRequired
	// ErrInvalidProject is returned for a project path without a namespace.
	ErrInvalidProject = errInvalidProject
	// ErrProjectNotSet is returned when a note call is made before SetProject.
	ErrProjectNotSet = errProjectNotSet
	// ErrMissingNoteID is returned when a created note has no id.
	ErrMissingNoteID = errMissingNoteID
)
