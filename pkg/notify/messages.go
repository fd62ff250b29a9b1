package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/sgaunet/issue-notify/internal/timeutil"
	"github.com/sgaunet/issue-notify/pkg/config"
)

// Status markers shown on the last line of each comment.
const (
	MarkerInProgress = "⏳ In progress..."
	MarkerComplete   = "✅ Complete"
	MarkerFailed     = "❌ Failed"
)

const robot = "🤖"

// StartBody renders the comment posted when the task starts.
func StartBody(cfg *config.Config, now time.Time) string {
	return strings.Join([]string{
		fmt.Sprintf("%s **%s** is working on this issue.", robot, cfg.Agent),
		"",
		taskLine(cfg),
		"**Started:** " + timeutil.FormatDisplay(now),
		"**Status:** " + MarkerInProgress,
	}, "\n")
}

// CompleteBody renders the comment shown once the task finished.
func CompleteBody(cfg *config.Config, start, now time.Time, minutes int) string {
	return strings.Join([]string{
		fmt.Sprintf("%s **%s** finished working on this issue.", robot, cfg.Agent),
		"",
		taskLine(cfg),
		"**Started:** " + timeutil.FormatDisplay(start),
		fmt.Sprintf("**Completed:** %s · Duration: %dm", timeutil.FormatDisplay(now), minutes),
		"**Status:** " + MarkerComplete,
	}, "\n")
}

// FailBody renders the comment shown when the task failed.
func FailBody(cfg *config.Config, start, now time.Time, minutes int) string {
	hint := cfg.LogsHint
	if hint == "" {
		hint = config.DefaultLogsHint
	}
	return strings.Join([]string{
		fmt.Sprintf("%s **%s** encountered an error on this issue.", robot, cfg.Agent),
		"",
		taskLine(cfg),
		"**Started:** " + timeutil.FormatDisplay(start),
		fmt.Sprintf("**Failed:** %s · Duration: %dm", timeutil.FormatDisplay(now), minutes),
		fmt.Sprintf("**Status:** %s (%s)", MarkerFailed, hint),
	}, "\n")
}

func taskLine(cfg *config.Config) string {
	return fmt.Sprintf("**Task:** %s · **Issue:** #%s", cfg.Action, cfg.IssueLabel())
}

// summary renders "{agent} #{issue} ({action})" for status lines.
func summary(cfg *config.Config) string {
	return fmt.Sprintf("%s #%s (%s)", cfg.Agent, cfg.IssueLabel(), cfg.Action)
}
