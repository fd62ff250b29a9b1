// Package notify implements the three status notifiers run around a task:
// start posts a status comment on the issue, complete and fail edit it.
//
// The notifiers never fail the surrounding workflow on their own. Every run
// returns a [Result]; the caller decides through a [Policy] whether a failed
// notification becomes a non-zero exit. One status line per run is written
// to the output writer for the task runner's log capture.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sgaunet/issue-notify/internal/logger"
	"github.com/sgaunet/issue-notify/internal/security"
	"github.com/sgaunet/issue-notify/internal/timeutil"
	"github.com/sgaunet/issue-notify/pkg/config"
	"github.com/sgaunet/issue-notify/pkg/handoff"
	"github.com/sgaunet/issue-notify/pkg/platform"
)

// ProviderFactory builds the platform provider for a validated configuration.
// It is only called when a network call is actually needed.
type ProviderFactory func(cfg *config.Config) (platform.Provider, error)

// Notifier runs the start, complete and fail steps against one issue.
type Notifier struct {
	cfg      *config.Config
	store    handoff.Store
	provider ProviderFactory
	now      func() time.Time
	out      io.Writer
	log      logger.Logger
}

// New creates a notifier writing status lines to stdout and using the wall clock.
func New(cfg *config.Config, store handoff.Store, provider ProviderFactory) *Notifier {
	return &Notifier{
		cfg:      cfg,
		store:    store,
		provider: provider,
		now:      time.Now,
		out:      os.Stdout,
		log:      logger.NoLogger(),
	}
}

// SetLogger sets the diagnostic logger.
func (n *Notifier) SetLogger(log logger.Logger) {
	n.log = log
}

// SetOutput sets where status lines are written.
func (n *Notifier) SetOutput(w io.Writer) {
	n.out = w
}

// SetClock replaces the clock.
func (n *Notifier) SetClock(now func() time.Time) {
	n.now = now
}

// Start posts the in-progress comment and saves the hand-off state.
// When posting fails the state is still saved with an empty comment id so
// that the later steps skip cleanly.
func (n *Notifier) Start(ctx context.Context) Result {
	now := n.now().UTC()
	res := Result{Phase: PhaseStart}

	id, err := n.createComment(ctx, StartBody(n.cfg, now))
	if err != nil {
		n.printf("WARNING: failed to post start comment: %s", n.redact(err))
		res.Outcome = OutcomeFailed
		res.Err = err
		n.saveState(&res, handoff.State{StartedAt: n.now().UTC()})
		return res
	}

	res.Outcome = OutcomeOK
	res.CommentID = id
	n.saveState(&res, handoff.State{CommentID: id, StartedAt: now})
	n.printf("STARTED: %s - comment %s", summary(n.cfg), id)
	return res
}

// Complete edits the comment to show the task finished.
func (n *Notifier) Complete(ctx context.Context) Result {
	return n.finish(ctx, completeStep)
}

// Fail edits the comment to show the task failed.
func (n *Notifier) Fail(ctx context.Context) Result {
	return n.finish(ctx, failStep)
}

// step holds what differs between completion and failure.
type step struct {
	phase     Phase
	noState   string
	noComment string
	success   string
	failure   string
	body      func(cfg *config.Config, start, now time.Time, minutes int) string
}

var (
	completeStep = step{
		phase:     PhaseComplete,
		noState:   "No comment ID - skipping completion update",
		noComment: "No comment ID - skipping completion update",
		success:   "COMPLETE",
		failure:   "WARNING: failed to update completion comment",
		body:      CompleteBody,
	}
	failStep = step{
		phase:     PhaseFail,
		noState:   "No comment to update",
		noComment: "No comment ID - skipping failure update",
		success:   "FAILED",
		failure:   "ERROR updating failure comment",
		body:      FailBody,
	}
)

func (n *Notifier) finish(ctx context.Context, s step) Result {
	res := Result{Phase: s.phase}

	state, err := n.store.Load()
	switch {
	case errors.Is(err, handoff.ErrNoState):
		n.log.Debug("No hand-off state found")
		n.printf("%s", s.noState)
		res.Outcome = OutcomeSkipped
		return res
	case err == nil && !state.HasComment():
		n.printf("%s", s.noComment)
		res.Outcome = OutcomeSkipped
		return res
	case errors.Is(err, handoff.ErrCorruptTimestamp):
		n.printf("ERROR: invalid start time in hand-off state: %s", n.redact(err))
		res.Outcome = OutcomeFailed
		res.CommentID = state.CommentID
		res.Err = err
		return res
	case err != nil:
		n.printf("ERROR: failed to read hand-off state: %s", n.redact(err))
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	now := n.now().UTC()
	minutes := timeutil.ElapsedMinutes(state.StartedAt, now)
	res.CommentID = state.CommentID
	res.Minutes = minutes
	n.log.Debug(fmt.Sprintf("Updating comment %s after %s", state.CommentID,
		timeutil.FormatDuration(now.Sub(state.StartedAt))))

	if err := n.editComment(ctx, state.CommentID, s.body(n.cfg, state.StartedAt, now, minutes)); err != nil {
		n.printf("%s: %s", s.failure, n.redact(err))
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	res.Outcome = OutcomeOK
	n.printf("%s: %s - %dm", s.success, summary(n.cfg), minutes)
	return res
}

func (n *Notifier) connect() (platform.Provider, error) {
	if err := n.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if n.provider == nil {
		return nil, ErrNoProvider
	}
	p, err := n.provider(n.cfg)
	if err != nil {
		return nil, err
	}
	n.log.Debug("Using " + p.PlatformName() + " for " + n.cfg.Repository)
	return p, nil
}

func (n *Notifier) createComment(ctx context.Context, body string) (string, error) {
	p, err := n.connect()
	if err != nil {
		return "", err
	}
	id, err := p.CreateComment(ctx, body)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrEmptyCommentID
	}
	return id, nil
}

func (n *Notifier) editComment(ctx context.Context, id, body string) error {
	p, err := n.connect()
	if err != nil {
		return err
	}
	return p.EditComment(ctx, id, body)
}

// saveState writes the hand-off state. A failure is reported and recorded in
// res but does not stop the run.
func (n *Notifier) saveState(res *Result, state handoff.State) {
	err := n.store.Save(state)
	if err == nil {
		return
	}
	n.printf("WARNING: %s: %s", ErrSaveState, n.redact(err))
	res.Outcome = OutcomeFailed
	if res.Err == nil {
		res.Err = fmt.Errorf("%w: %w", ErrSaveState, err)
	}
}

func (n *Notifier) redact(err error) string {
	return security.Redact(err.Error(), n.cfg.Token)
}

func (n *Notifier) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(n.out, format+"\n", args...)
}
