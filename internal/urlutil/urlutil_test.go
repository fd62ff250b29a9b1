package urlutil_test

import (
	"testing"

	"github.com/sgaunet/issue-notify/internal/urlutil"
	"github.com/stretchr/testify/assert"
)

func TestExtractPathComponents(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		componentCount int
		want           string
	}{
		{name: "github_https", url: "https://github.com/owner/repo", componentCount: 2, want: "owner/repo"},
		{name: "github_ssh_colon", url: "git@github.com:owner/repo", componentCount: 2, want: "owner/repo"},
		{name: "github_ssh_protocol", url: "ssh://git@github.com/owner/repo", componentCount: 2, want: "owner/repo"},
		{name: "gitlab_https_3_components", url: "https://gitlab.com/group/sub/project", componentCount: 3, want: "group/sub/project"},
		{name: "gitlab_https_extract_2", url: "https://gitlab.com/group/sub/project", componentCount: 2, want: "sub/project"},
		{name: "ssh_colon_nested", url: "git@gitlab.com:group/sub/project", componentCount: 2, want: "group/sub/project"},
		{name: "empty_url", url: "", componentCount: 2, want: ""},
		{name: "extract_more_than_available", url: "https://a/b", componentCount: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, urlutil.ExtractPathComponents(tt.url, tt.componentCount))
		})
	}
}

func TestRepositoryPath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "https with .git", url: "https://github.com/org/repo.git", want: "org/repo"},
		{name: "https trailing slash", url: "https://github.com/org/repo/", want: "org/repo"},
		{name: "ssh colon", url: "git@github.com:org/repo.git", want: "org/repo"},
		{name: "ssh protocol", url: "ssh://git@github.com/org/repo.git", want: "org/repo"},
		{name: "enterprise host with port", url: "https://ghe.example.com:8443/org/repo.git", want: "org/repo"},
		{name: "gitlab nested groups", url: "https://gitlab.com/group/sub/project.git", want: "group/sub/project"},
		{name: "gitlab ssh nested", url: "git@gitlab.com:group/sub/project.git", want: "group/sub/project"},
		{name: "host only", url: "https://github.com", want: ""},
		{name: "not a url", url: "not-a-valid-url", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, urlutil.RepositoryPath(tt.url))
		})
	}
}

func TestSplitOwnerRepo(t *testing.T) {
	tests := []struct {
		slug      string
		wantOwner string
		wantName  string
		wantOK    bool
	}{
		{slug: "org/repo", wantOwner: "org", wantName: "repo", wantOK: true},
		{slug: " org/repo ", wantOwner: "org", wantName: "repo", wantOK: true},
		{slug: "org", wantOK: false},
		{slug: "org/", wantOK: false},
		{slug: "/repo", wantOK: false},
		{slug: "a/b/c", wantOK: false},
		{slug: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			owner, name, ok := urlutil.SplitOwnerRepo(tt.slug)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
