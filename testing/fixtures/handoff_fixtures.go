package fixtures

import "github.com/sgaunet/issue-notify/pkg/handoff"

// StartedState returns hand-off state for a comment created at StartTime.
func StartedState() handoff.State {
	return handoff.State{
		CommentID: DefaultCommentID,
		StartedAt: StartTime(),
	}
}

// SkippedState returns the hand-off state left by a failed start.
func SkippedState() handoff.State {
	return handoff.State{
		StartedAt: StartTime(),
	}
}
