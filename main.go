// Package main provides the entry point for the issue-notify CLI tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sgaunet/bullets"
	"github.com/spf13/cobra"

	"github.com/sgaunet/issue-notify/internal/logger"
	"github.com/sgaunet/issue-notify/internal/security"
	"github.com/sgaunet/issue-notify/pkg/config"
	"github.com/sgaunet/issue-notify/pkg/handoff"
	"github.com/sgaunet/issue-notify/pkg/notify"
	"github.com/sgaunet/issue-notify/pkg/platform"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "development"

var (
	logLevel   string
	configPath string
	envFile    string
	stateDir   string
	strict     bool
	dryRun     bool
	log        *bullets.Logger
)

var rootCmd = &cobra.Command{
	Use:   "issue-notify",
	Short: "Post task status comments on GitHub and GitLab issues",
	Long: `issue-notify keeps one status comment per task run on an issue.

Run "issue-notify start" before the task, then "issue-notify complete" or
"issue-notify fail" after it. The comment id and start time are handed from
one step to the next through two files in the state directory.

Notification problems are reported on stdout and never fail the task unless
--strict is set.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log = logger.NewLogger(logLevel)
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Post the in-progress comment and record the hand-off state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), (*notify.Notifier).Start)
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark the status comment as complete",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), (*notify.Notifier).Complete)
	},
}

var failCmd = &cobra.Command{
	Use:   "fail",
	Short: "Mark the status comment as failed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), (*notify.Notifier).Fail)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	flags.StringVar(&configPath, "config", "",
		"Config file (default ~/.config/issue-notify/config.yml)")
	flags.StringVar(&envFile, "env-file", "",
		"Dotenv file filling unset environment variables")
	flags.StringVar(&stateDir, "state-dir", "",
		"Directory holding the hand-off files (default system temp dir)")
	flags.BoolVar(&strict, "strict", false,
		"Exit non-zero when the notification fails")
	flags.BoolVar(&dryRun, "dry-run", false,
		"Log comment bodies instead of calling the API")

	rootCmd.AddCommand(startCmd, completeCmd, failCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", security.SanitizeString(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, step func(*notify.Notifier, context.Context) notify.Result) error {
	cfg := loadConfig()
	log.Debug(fmt.Sprintf("Agent %s, issue #%s, repository %q, platform %s",
		cfg.Agent, cfg.IssueLabel(), cfg.Repository, cfg.Platform))

	store := handoff.NewFileStore(cfg.StateDir)
	log.Debug("Hand-off state: " + store.CommentIDPath() + ", " + store.StartTimePath())

	n := notify.New(cfg, store, providerFactory())
	n.SetLogger(log)
	n.SetOutput(os.Stdout)

	res := step(n, ctx)
	log.Debug(fmt.Sprintf("%s finished: %s", res.Phase, res.Outcome))

	return notify.PolicyFor(cfg.Strict).Resolve(res) //nolint:wrapcheck // already carries the phase
}

// loadConfig resolves the configuration. A broken config or env file is
// reported and the environment alone is used instead.
func loadConfig() *config.Config {
	cfg, err := config.Load(config.Options{
		ConfigPath: configPath,
		EnvFile:    envFile,
	})
	if err != nil {
		log.Warn(fmt.Sprintf("Failed to load configuration, using environment only: %v", err))
		cfg = config.FromEnv(os.Getenv)
	}

	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	if strict {
		cfg.Strict = true
	}
	return cfg
}

func providerFactory() notify.ProviderFactory {
	if dryRun {
		log.Info("Dry run: no API calls will be made")
		dry := platform.NewDryRunProvider(log)
		return func(*config.Config) (platform.Provider, error) {
			return dry, nil
		}
	}
	return func(cfg *config.Config) (platform.Provider, error) {
		return platform.NewProvider(cfg, log)
	}
}
