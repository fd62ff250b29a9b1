package platform

import (
	"fmt"

	"github.com/sgaunet/bullets"

	"github.com/sgaunet/issue-notify/internal/security"
	"github.com/sgaunet/issue-notify/pkg/config"
	"github.com/sgaunet/issue-notify/pkg/git"
	ghclient "github.com/sgaunet/issue-notify/pkg/github"
	"github.com/sgaunet/issue-notify/pkg/gitlab"
)

// NewProvider creates the Provider matching cfg.Platform. The configuration
// must have passed Validate.
//
//nolint:ireturn // Factory function must return interface to enable platform abstraction.
func NewProvider(cfg *config.Config, logger *bullets.Logger) (Provider, error) {
	switch cfg.Platform {
	case git.PlatformGitHub:
		security.DebugAuth(logger, "GitHub", map[string]string{
			"token":   cfg.Token.String(),
			"api_url": cfg.APIURL,
			"repo":    cfg.Repository,
		})
		client, err := ghclient.NewClient(ghclient.Options{
			Token:   cfg.Token,
			APIURL:  cfg.APIURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub client: %w", err)
		}
		client.SetLogger(logger)
		if err := client.SetRepository(cfg.Repository); err != nil {
			return nil, fmt.Errorf("failed to set GitHub repository: %w", err)
		}
		return NewGitHubAdapter(client, int(cfg.Issue), logger), nil

	case git.PlatformGitLab:
		security.DebugAuth(logger, "GitLab", map[string]string{
			"token":   cfg.Token.String(),
			"api_url": cfg.APIURL,
			"project": cfg.Repository,
		})
		client, err := gitlab.NewClient(gitlab.Options{
			Token:   cfg.Token,
			APIURL:  cfg.APIURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create GitLab client: %w", err)
		}
		client.SetLogger(logger)
		if err := client.SetProject(cfg.Repository); err != nil {
			return nil, fmt.Errorf("failed to set GitLab project: %w", err)
		}
		return NewGitLabAdapter(client, cfg.Issue, logger), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, cfg.Platform)
	}
}
