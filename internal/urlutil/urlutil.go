// Package urlutil turns git remote URLs and REPO values into repository paths.
//
// It handles three remote formats:
//   - HTTPS: https://github.com/owner/repo(.git)
//   - SSH colon: git@github.com:owner/repo(.git)
//   - SSH protocol: ssh://git@github.com/owner/repo(.git)
package urlutil

import "strings"

const (
	// minColonParts is the minimum number of parts when splitting git@host:path.
	minColonParts = 2
	// ownerRepoParts is the number of components in a GitHub "owner/name" slug.
	ownerRepoParts = 2
)

// ExtractPathComponents extracts the last N path components from a git remote URL.
// The .git suffix must already be removed. For the SSH colon format everything
// after the colon is returned regardless of componentCount.
//
//	ExtractPathComponents("git@github.com:owner/repo", 2) → "owner/repo"
//	ExtractPathComponents("https://gitlab.com/group/subgroup/project", 2) → "subgroup/project"
func ExtractPathComponents(url string, componentCount int) string {
	if strings.HasPrefix(url, "ssh://git@") {
		parts := strings.Split(url, "/")
		if len(parts) >= componentCount {
			return strings.Join(parts[len(parts)-componentCount:], "/")
		}
		return ""
	}

	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		if len(parts) >= minColonParts {
			return parts[len(parts)-1]
		}
		return ""
	}

	parts := strings.Split(url, "/")
	if len(parts) >= componentCount {
		return strings.Join(parts[len(parts)-componentCount:], "/")
	}
	return ""
}

// RepositoryPath returns the full repository path of a remote URL, without host
// and without the .git suffix. Nested GitLab groups are preserved.
//
//	RepositoryPath("https://gitlab.com/group/sub/project.git") → "group/sub/project"
//	RepositoryPath("git@github.com:owner/repo.git") → "owner/repo"
func RepositoryPath(remoteURL string) string {
	url := strings.TrimSuffix(strings.TrimSpace(remoteURL), "/")
	url = strings.TrimSuffix(url, ".git")

	if strings.HasPrefix(url, "git@") {
		return strings.Trim(ExtractPathComponents(url, minColonParts), "/")
	}

	_, rest, found := strings.Cut(url, "://")
	if !found {
		return ""
	}
	_, path, found := strings.Cut(rest, "/")
	if !found {
		return ""
	}
	return strings.Trim(path, "/")
}

// SplitOwnerRepo splits an "owner/name" slug. It reports false unless the slug
// has exactly two non-empty components.
func SplitOwnerRepo(slug string) (string, string, bool) {
	parts := strings.Split(strings.TrimSpace(slug), "/")
	if len(parts) != ownerRepoParts || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
