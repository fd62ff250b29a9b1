// Package git reads repository metadata from the working directory.
//
// It is used to fill in the target repository and platform when REPO is not
// set by the task runner.
package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/sgaunet/issue-notify/internal/urlutil"
)

// Platform identifies the hosting service of a repository.
type Platform string

const (
	PlatformGitLab Platform = "gitlab"
	PlatformGitHub Platform = "github"

	defaultRemote = "origin"
)

var (
	errNoRemoteURL     = errors.New("no URLs found for remote")
	errUnknownPlatform = errors.New("repository is not hosted on GitLab or GitHub")
	errNoRepoPath      = errors.New("cannot derive repository path from remote URL")

	// ErrUnknownPlatform is returned when the remote host is neither GitHub nor GitLab.
	ErrUnknownPlatform = errUnknownPlatform
	// ErrNoRepoPath is returned when a remote URL carries no owner/name path.
	ErrNoRepoPath = errNoRepoPath
)

// Repository wraps a go-git repository.
type Repository struct {
	repo *git.Repository
}

// OpenRepository opens the repository containing path, searching parent directories.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo}, nil
}

// GetRemoteURL returns the first URL configured for remoteName.
func (r *Repository) GetRemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", errNoRemoteURL, remoteName)
	}

	return urls[0], nil
}

// DetectPlatform infers the hosting service from the origin remote.
func (r *Repository) DetectPlatform() (Platform, error) {
	url, err := r.GetRemoteURL(defaultRemote)
	if err != nil {
		return "", err
	}
	return PlatformFromURL(url)
}

// RepositorySlug returns the repository path of the origin remote,
// e.g. "org/repo" for git@github.com:org/repo.git.
func (r *Repository) RepositorySlug() (string, error) {
	url, err := r.GetRemoteURL(defaultRemote)
	if err != nil {
		return "", err
	}

	slug := urlutil.RepositoryPath(url)
	if slug == "" {
		return "", fmt.Errorf("%w: %s", errNoRepoPath, url)
	}
	return slug, nil
}

// PlatformFromURL infers the hosting service from a remote or API URL.
func PlatformFromURL(url string) (Platform, error) {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "gitlab"):
		return PlatformGitLab, nil
	case strings.Contains(lower, "github"):
		return PlatformGitHub, nil
	default:
		return "", fmt.Errorf("%w: %s", errUnknownPlatform, url)
	}
}
