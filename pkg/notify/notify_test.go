package notify_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sgaunet/issue-notify/internal/logger"
	"github.com/sgaunet/issue-notify/internal/security"
	"github.com/sgaunet/issue-notify/pkg/config"
	"github.com/sgaunet/issue-notify/pkg/handoff"
	"github.com/sgaunet/issue-notify/pkg/notify"
	"github.com/sgaunet/issue-notify/pkg/platform"
	"github.com/sgaunet/issue-notify/testing/fixtures"
	"github.com/sgaunet/issue-notify/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness wires a notifier to a mock provider, a store and a captured output.
type harness struct {
	notifier  *notify.Notifier
	provider  *mocks.PlatformProvider
	out       *bytes.Buffer
	factories int
}

func newHarness(t *testing.T, cfg *config.Config, store handoff.Store, now time.Time) *harness {
	t.Helper()
	h := &harness{
		provider: mocks.NewPlatformProvider(),
		out:      &bytes.Buffer{},
	}
	h.notifier = notify.New(cfg, store, func(*config.Config) (platform.Provider, error) {
		h.factories++
		return h.provider, nil
	})
	h.notifier.SetOutput(h.out)
	h.notifier.SetClock(fixtures.FixedClock(now))
	return h
}

func (h *harness) lines() []string {
	return strings.Split(strings.TrimRight(h.out.String(), "\n"), "\n")
}

func TestStart_Success(t *testing.T) {
	store := handoff.NewMemoryStore()
	h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime())

	res := h.notifier.Start(context.Background())

	assert.Equal(t, notify.PhaseStart, res.Phase)
	assert.Equal(t, notify.OutcomeOK, res.Outcome)
	assert.Equal(t, "1001", res.CommentID)
	require.NoError(t, res.Err)
	assert.Equal(t, "STARTED: bot1 #42 (lint) - comment 1001\n", h.out.String())

	body := h.provider.LastBody()
	assert.Contains(t, body, "bot1")
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, "lint")
	assert.Contains(t, body, notify.MarkerInProgress)
	assert.Equal(t, 1, h.provider.GetCallCount("CreateComment"))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "1001", state.CommentID)
	assert.True(t, state.StartedAt.Equal(fixtures.StartTime()))
}

func TestStart_ProviderError(t *testing.T) {
	store := handoff.NewMemoryStore()
	h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime())
	h.provider.CreateCommentError = errors.New("401 Bad credentials for " + fixtures.DefaultToken)

	res := h.notifier.Start(context.Background())

	assert.Equal(t, notify.OutcomeFailed, res.Outcome)
	require.Error(t, res.Err)
	assert.Empty(t, res.CommentID)

	lines := h.lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "WARNING: failed to post start comment: "))
	assert.NotContains(t, lines[0], fixtures.DefaultToken)

	state, err := store.Load()
	require.NoError(t, err)
	assert.False(t, state.HasComment())
	assert.False(t, state.StartedAt.IsZero())
	assert.Equal(t, 1, store.Saves())
}

func TestStart_InvalidConfigSkipsProvider(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing token", func(c *config.Config) { c.Token = security.NewSecureToken("") }},
		{"missing issue", func(c *config.Config) { c.Issue = 0 }},
		{"missing repository", func(c *config.Config) { c.Repository = "" }},
		{"malformed repository", func(c *config.Config) { c.Repository = "just-a-name" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fixtures.ValidConfig()
			tt.mutate(cfg)
			store := handoff.NewMemoryStore()
			h := newHarness(t, cfg, store, fixtures.StartTime())

			res := h.notifier.Start(context.Background())

			assert.Equal(t, notify.OutcomeFailed, res.Outcome)
			assert.Equal(t, 0, h.factories)
			assert.Equal(t, 0, h.provider.TotalCalls())
			assert.Contains(t, h.out.String(), "WARNING: failed to post start comment: invalid configuration")
			assert.True(t, store.Exists())
		})
	}
}

func TestStart_EmptyCommentID(t *testing.T) {
	store := handoff.NewMemoryStore()
	h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime())
	h.provider.CreateCommentResponse = ""

	res := h.notifier.Start(context.Background())

	assert.Equal(t, notify.OutcomeFailed, res.Outcome)
	require.ErrorIs(t, res.Err, notify.ErrEmptyCommentID)
	state, err := store.Load()
	require.NoError(t, err)
	assert.False(t, state.HasComment())
}

func TestStart_FileStoreAlwaysWritesBothFiles(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		wantID    string
	}{
		{"success", nil, "1001"},
		{"failure", errors.New("connection refused"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := handoff.NewFileStore(t.TempDir())
			h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime())
			h.provider.CreateCommentError = tt.createErr

			h.notifier.Start(context.Background())

			id, err := os.ReadFile(store.CommentIDPath())
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, string(id))

			start, err := os.ReadFile(store.StartTimePath())
			require.NoError(t, err)
			assert.NotEmpty(t, strings.TrimSpace(string(start)))
		})
	}
}

func TestStart_SaveFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	store := handoff.NewFileStore(missing)
	h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime())

	res := h.notifier.Start(context.Background())

	assert.Equal(t, notify.OutcomeFailed, res.Outcome)
	assert.Equal(t, "1001", res.CommentID)
	require.ErrorIs(t, res.Err, notify.ErrSaveState)

	lines := h.lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "WARNING: failed to write hand-off state: "))
	assert.Equal(t, "STARTED: bot1 #42 (lint) - comment 1001", lines[1])
}

func TestFinish_Skips(t *testing.T) {
	tests := []struct {
		name     string
		store    handoff.Store
		run      func(*notify.Notifier, context.Context) notify.Result
		wantLine string
	}{
		{
			name:     "complete without hand-off",
			store:    handoff.NewMemoryStore(),
			run:      (*notify.Notifier).Complete,
			wantLine: "No comment ID - skipping completion update",
		},
		{
			name:     "complete with empty id",
			store:    handoff.NewMemoryStoreWith(fixtures.SkippedState()),
			run:      (*notify.Notifier).Complete,
			wantLine: "No comment ID - skipping completion update",
		},
		{
			name:     "fail without hand-off",
			store:    handoff.NewMemoryStore(),
			run:      (*notify.Notifier).Fail,
			wantLine: "No comment to update",
		},
		{
			name:     "fail with empty id",
			store:    handoff.NewMemoryStoreWith(fixtures.SkippedState()),
			run:      (*notify.Notifier).Fail,
			wantLine: "No comment ID - skipping failure update",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, fixtures.ValidConfig(), tt.store, fixtures.StartTime())

			res := tt.run(h.notifier, context.Background())

			assert.Equal(t, notify.OutcomeSkipped, res.Outcome)
			require.NoError(t, res.Err)
			require.NoError(t, notify.Strict.Resolve(res))
			assert.Equal(t, tt.wantLine+"\n", h.out.String())
			assert.Equal(t, 0, h.factories)
			assert.Equal(t, 0, h.provider.TotalCalls())
		})
	}
}

func TestFinish_Success(t *testing.T) {
	now := fixtures.StartTime().Add(5*time.Minute + 30*time.Second)

	tests := []struct {
		name       string
		run        func(*notify.Notifier, context.Context) notify.Result
		wantPhase  notify.Phase
		wantLine   string
		wantMarker string
		otherMark  string
	}{
		{
			name:       "complete",
			run:        (*notify.Notifier).Complete,
			wantPhase:  notify.PhaseComplete,
			wantLine:   "COMPLETE: bot1 #42 (lint) - 5m\n",
			wantMarker: notify.MarkerComplete,
			otherMark:  notify.MarkerFailed,
		},
		{
			name:       "fail",
			run:        (*notify.Notifier).Fail,
			wantPhase:  notify.PhaseFail,
			wantLine:   "FAILED: bot1 #42 (lint) - 5m\n",
			wantMarker: notify.MarkerFailed,
			otherMark:  notify.MarkerComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := handoff.NewMemoryStoreWith(fixtures.StartedState())
			h := newHarness(t, fixtures.ValidConfig(), store, now)

			res := tt.run(h.notifier, context.Background())

			assert.Equal(t, tt.wantPhase, res.Phase)
			assert.Equal(t, notify.OutcomeOK, res.Outcome)
			assert.Equal(t, 5, res.Minutes)
			assert.Equal(t, tt.wantLine, h.out.String())

			call := h.provider.GetLastCall("EditComment")
			require.NotNil(t, call)
			assert.Equal(t, fixtures.DefaultCommentID, call.Args["id"])
			body, _ := call.Args["body"].(string)
			assert.Contains(t, body, tt.wantMarker)
			assert.NotContains(t, body, tt.otherMark)
			assert.Contains(t, body, "Duration: 5m")
			assert.Contains(t, body, "2024-01-01 00:00 UTC")
			assert.Contains(t, body, "2024-01-01 00:05 UTC")
		})
	}
}

func TestFinish_DurationFloorsMinutes(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"ninety seconds", 90 * time.Second, 1},
		{"under a minute", 59 * time.Second, 0},
		{"exact hour", time.Hour, 60},
		{"clock skew", -2 * time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := handoff.NewMemoryStoreWith(fixtures.StartedState())
			h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime().Add(tt.elapsed))

			res := h.notifier.Complete(context.Background())

			assert.Equal(t, tt.want, res.Minutes)
		})
	}
}

func TestFinish_EditError(t *testing.T) {
	tests := []struct {
		name       string
		run        func(*notify.Notifier, context.Context) notify.Result
		wantPrefix string
	}{
		{"complete", (*notify.Notifier).Complete, "WARNING: failed to update completion comment: "},
		{"fail", (*notify.Notifier).Fail, "ERROR updating failure comment: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := handoff.NewMemoryStoreWith(fixtures.StartedState())
			h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime().Add(time.Minute))
			h.provider.EditCommentError = errors.New("HTTP 500")

			res := tt.run(h.notifier, context.Background())

			assert.Equal(t, notify.OutcomeFailed, res.Outcome)
			require.Error(t, res.Err)
			lines := h.lines()
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantPrefix+"HTTP 500", lines[0])
			require.NoError(t, notify.Lenient.Resolve(res))
			require.Error(t, notify.Strict.Resolve(res))
		})
	}
}

func TestFinish_CorruptTimestamp(t *testing.T) {
	dir := t.TempDir()
	store := handoff.NewFileStore(dir)
	require.NoError(t, os.WriteFile(store.CommentIDPath(), []byte("1001"), 0o600))
	require.NoError(t, os.WriteFile(store.StartTimePath(), []byte("yesterday"), 0o600))

	for _, run := range []func(*notify.Notifier, context.Context) notify.Result{
		(*notify.Notifier).Complete,
		(*notify.Notifier).Fail,
	} {
		h := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime())

		res := run(h.notifier, context.Background())

		assert.Equal(t, notify.OutcomeFailed, res.Outcome)
		require.ErrorIs(t, res.Err, handoff.ErrCorruptTimestamp)
		assert.True(t, strings.HasPrefix(h.out.String(), "ERROR: invalid start time in hand-off state: "))
		assert.Equal(t, 0, h.provider.TotalCalls())
	}
}

func TestStartThenComplete_FileStore(t *testing.T) {
	store := handoff.NewFileStore(t.TempDir())
	start := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime())
	require.Equal(t, notify.OutcomeOK, start.notifier.Start(context.Background()).Outcome)

	done := newHarness(t, fixtures.ValidConfig(), store, fixtures.StartTime().Add(12*time.Minute))
	res := done.notifier.Complete(context.Background())

	assert.Equal(t, notify.OutcomeOK, res.Outcome)
	assert.Equal(t, 12, res.Minutes)
	assert.Equal(t, "COMPLETE: bot1 #42 (lint) - 12m\n", done.out.String())
}

func TestNotifier_NoProvider(t *testing.T) {
	n := notify.New(fixtures.ValidConfig(), handoff.NewMemoryStore(), nil)
	var out bytes.Buffer
	n.SetOutput(&out)

	res := n.Start(context.Background())

	require.ErrorIs(t, res.Err, notify.ErrNoProvider)
}

func TestNotifier_SetLogger(t *testing.T) {
	var logs bytes.Buffer
	h := newHarness(t, fixtures.ValidConfig(), handoff.NewMemoryStore(), fixtures.StartTime())
	h.notifier.SetLogger(logger.NewLoggerTo(&logs, "debug"))

	h.notifier.Start(context.Background())

	assert.Contains(t, logs.String(), "Using MockPlatform for org/repo")
	assert.NotContains(t, h.out.String(), "MockPlatform")
}
