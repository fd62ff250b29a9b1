package handoff

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgaunet/issue-notify/internal/timeutil"
)

const (
	// DefaultCommentIDFile is the file holding the comment identifier.
	DefaultCommentIDFile = "dagu-comment-id"
	// DefaultStartTimeFile is the file holding the start timestamp.
	DefaultStartTimeFile = "dagu-start-time"

	filePerm = 0o600
)

// FileStore keeps hand-off state in two plain-text files inside a directory.
type FileStore struct {
	commentIDPath string
	startTimePath string
}

// NewFileStore creates a store using the default file names inside dir.
// An empty dir means [os.TempDir].
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = os.TempDir()
	}
	return NewFileStoreWithPaths(
		filepath.Join(dir, DefaultCommentIDFile),
		filepath.Join(dir, DefaultStartTimeFile),
	)
}

// NewFileStoreWithPaths creates a store with explicit file paths.
func NewFileStoreWithPaths(commentIDPath, startTimePath string) *FileStore {
	return &FileStore{
		commentIDPath: commentIDPath,
		startTimePath: startTimePath,
	}
}

// CommentIDPath returns the path of the comment identifier file.
func (s *FileStore) CommentIDPath() string {
	return s.commentIDPath
}

// StartTimePath returns the path of the start time file.
func (s *FileStore) StartTimePath() string {
	return s.startTimePath
}

// Save writes both files. The start time is written first so that a reader
// never sees a comment identifier without a start time.
func (s *FileStore) Save(state State) error {
	if err := os.WriteFile(s.startTimePath, []byte(timeutil.FormatStamp(state.StartedAt)), filePerm); err != nil {
		return fmt.Errorf("failed to write start time: %w", err)
	}
	if err := os.WriteFile(s.commentIDPath, []byte(state.CommentID), filePerm); err != nil {
		return fmt.Errorf("failed to write comment id: %w", err)
	}
	return nil
}

// Load reads both files. An empty comment identifier is returned without
// reading the start time, since nothing will be updated.
func (s *FileStore) Load() (State, error) {
	// #nosec G304 - paths come from configuration, not from remote input
	rawID, err := os.ReadFile(s.commentIDPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return State{}, fmt.Errorf("%w: %s", errNoState, s.commentIDPath)
		}
		return State{}, fmt.Errorf("failed to read comment id: %w", err)
	}

	state := State{CommentID: strings.TrimSpace(string(rawID))}
	if !state.HasComment() {
		return state, nil
	}

	// #nosec G304 - paths come from configuration, not from remote input
	rawStart, err := os.ReadFile(s.startTimePath)
	if err != nil {
		return state, fmt.Errorf("%w: %w", errCorruptTimestamp, err)
	}

	startedAt, err := timeutil.ParseStamp(string(rawStart))
	if err != nil {
		return state, fmt.Errorf("%w: %w", errCorruptTimestamp, err)
	}
	state.StartedAt = startedAt

	return state, nil
}

// Exists reports whether the comment identifier file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.commentIDPath)
	return err == nil
}

var _ Store = (*FileStore)(nil)
