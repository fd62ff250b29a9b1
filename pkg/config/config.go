// Package config builds the notifier configuration from defaults, an optional
// YAML file, an optional dotenv file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sgaunet/issue-notify/internal/security"
	"github.com/sgaunet/issue-notify/internal/urlutil"
	"github.com/sgaunet/issue-notify/pkg/git"
)

// Environment variables read by Load.
const (
	EnvAgent       = "AGENT_NAME"
	EnvIssue       = "ISSUE_NUM"
	EnvRepository  = "REPO"
	EnvAction      = "ACTION"
	EnvToken       = "GH_TOKEN"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvGitLabToken = "GITLAB_TOKEN"
	EnvPlatform    = "NOTIFY_PLATFORM"
	EnvAPIURL      = "NOTIFY_API_URL"
	EnvStateDir    = "NOTIFY_STATE_DIR"
)

// Defaults applied before any source is read.
const (
	DefaultAgent    = "unknown"
	DefaultTimeout  = 30 * time.Second
	DefaultLogsHint = "check Dagu UI for logs"
)

// Config is the resolved configuration shared by all three subcommands.
type Config struct {
	Agent      string
	Issue      int64
	Repository string
	Action     string
	Token      security.SecureToken
	Platform   git.Platform
	APIURL     string
	StateDir   string
	Timeout    time.Duration
	Strict     bool
	LogsHint   string
}

// FileConfig is the YAML layout of the optional config file.
type FileConfig struct {
	Platform string `yaml:"platform"`
	APIURL   string `yaml:"api_url"`
	StateDir string `yaml:"state_dir"`
	Timeout  string `yaml:"timeout"`
	Strict   bool   `yaml:"strict"`
	LogsHint string `yaml:"logs_hint"`
}

// Options controls where Load looks for its sources.
type Options struct {
	// ConfigPath is the YAML file to read. Empty means DefaultConfigPath.
	// A missing file is not an error.
	ConfigPath string
	// EnvFile is a dotenv file whose values fill unset environment variables.
	EnvFile string
	// Getenv reads the environment. Defaults to os.Getenv.
	Getenv func(string) string
	// WorkDir is where the git remote is looked up when REPO is empty.
	WorkDir string
	// DisableGitDetection skips the git remote lookup.
	DisableGitDetection bool
}

// Default returns the configuration before any source is applied.
func Default() *Config {
	return &Config{
		Agent:    DefaultAgent,
		Platform: git.PlatformGitHub,
		StateDir: os.TempDir(),
		Timeout:  DefaultTimeout,
		LogsHint: DefaultLogsHint,
	}
}

// DefaultConfigPath returns ~/.config/issue-notify/config.yml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "issue-notify", "config.yml"), nil
}

// Load resolves the configuration. It does not validate it: a notifier must be
// able to run, and degrade, with an incomplete configuration.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	fileCfg, err := readConfigFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	platformSet, err := cfg.applyFile(fileCfg)
	if err != nil {
		return nil, err
	}

	getenv, err := envLookup(opts)
	if err != nil {
		return nil, err
	}
	if cfg.applyEnv(getenv) {
		platformSet = true
	}

	if cfg.Repository == "" && !opts.DisableGitDetection {
		cfg.applyGitRemote(opts.WorkDir, !platformSet)
	}
	if !platformSet && cfg.APIURL != "" {
		if p, err := git.PlatformFromURL(cfg.APIURL); err == nil {
			cfg.Platform = p
		}
	}

	cfg.Token = resolveToken(cfg.Platform, getenv)
	return cfg, nil
}

// FromEnv builds a configuration from defaults and the environment only.
// It cannot fail and is used when Load reports a broken config source.
func FromEnv(getenv func(string) string) *Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Default()
	cfg.applyEnv(getenv)
	cfg.Token = resolveToken(cfg.Platform, getenv)
	return cfg
}

// Validate checks the fields needed to reach the API.
func (c *Config) Validate() error {
	switch c.Platform {
	case git.PlatformGitHub:
		if c.Repository == "" {
			return errRepositoryRequired
		}
		if _, _, ok := urlutil.SplitOwnerRepo(c.Repository); !ok {
			return fmt.Errorf("%w: %q", errInvalidRepository, c.Repository)
		}
	case git.PlatformGitLab:
		if c.Repository == "" {
			return errRepositoryRequired
		}
		if !strings.Contains(c.Repository, "/") {
			return fmt.Errorf("%w: %q", errInvalidRepository, c.Repository)
		}
	default:
		return fmt.Errorf("%w: %q", errUnsupportedPlatform, c.Platform)
	}

	if c.Issue <= 0 {
		return errInvalidIssue
	}
	if c.Token.IsEmpty() {
		return errTokenRequired
	}
	return nil
}

// IssueLabel renders the issue number for status lines, "?" when unknown.
func (c *Config) IssueLabel() string {
	if c.Issue <= 0 {
		return "?"
	}
	return strconv.FormatInt(c.Issue, 10)
}

func readConfigFile(path string) (*FileConfig, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return &FileConfig{}, nil //nolint:nilerr // no home directory means no config file
		}
		path = defaultPath
	}

	// #nosec G304 - reading a user supplied config path is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileCfg FileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errConfigParse, path, err)
	}
	return &fileCfg, nil
}

func (c *Config) applyFile(f *FileConfig) (bool, error) {
	platformSet := false
	if p := strings.TrimSpace(f.Platform); p != "" {
		c.Platform = git.Platform(strings.ToLower(p))
		platformSet = true
	}
	if v := strings.TrimSpace(f.APIURL); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(f.StateDir); v != "" {
		c.StateDir = v
	}
	if v := strings.TrimSpace(f.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return false, fmt.Errorf("%w: %q", errInvalidTimeout, v)
		}
		c.Timeout = d
	}
	if v := strings.TrimSpace(f.LogsHint); v != "" {
		c.LogsHint = v
	}
	c.Strict = f.Strict
	return platformSet, nil
}

// applyEnv copies environment values over the current configuration and
// reports whether the platform was set explicitly.
func (c *Config) applyEnv(getenv func(string) string) bool {
	if v := strings.TrimSpace(getenv(EnvAgent)); v != "" {
		c.Agent = v
	}
	if v := strings.TrimSpace(getenv(EnvIssue)); v != "" {
		c.Issue = parseIssue(v)
	}
	if v := strings.TrimSpace(getenv(EnvRepository)); v != "" {
		c.Repository = v
	}
	c.Action = strings.TrimSpace(getenv(EnvAction))
	if v := strings.TrimSpace(getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(getenv(EnvStateDir)); v != "" {
		c.StateDir = v
	}
	if v := strings.TrimSpace(getenv(EnvPlatform)); v != "" {
		c.Platform = git.Platform(strings.ToLower(v))
		return true
	}
	return false
}

func (c *Config) applyGitRemote(workDir string, detectPlatform bool) {
	if workDir == "" {
		workDir = "."
	}
	repo, err := git.OpenRepository(workDir)
	if err != nil {
		return
	}
	slug, err := repo.RepositorySlug()
	if err != nil {
		return
	}
	c.Repository = slug

	if detectPlatform {
		if p, err := repo.DetectPlatform(); err == nil {
			c.Platform = p
		}
	}
}

// parseIssue accepts "42" and "#42". Anything else yields 0, which Validate rejects.
func parseIssue(v string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(v, "#"), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func resolveToken(p git.Platform, getenv func(string) string) security.SecureToken {
	keys := []string{EnvToken, EnvGitHubToken}
	if p == git.PlatformGitLab {
		keys = []string{EnvGitLabToken, EnvToken}
	}
	for _, key := range keys {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return security.NewSecureToken(v)
		}
	}
	return security.NewSecureToken("")
}

// envLookup layers the dotenv file, if any, under the process environment.
func envLookup(opts Options) (func(string) string, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if opts.EnvFile == "" {
		return getenv, nil
	}

	values, err := godotenv.Read(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errEnvFile, opts.EnvFile, err)
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return values[key]
	}, nil
}
