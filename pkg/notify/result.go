package notify

import "fmt"

// Phase identifies which notifier produced a [Result].
type Phase string

// Notifier phases.
const (
	PhaseStart    Phase = "start"
	PhaseComplete Phase = "complete"
	PhaseFail     Phase = "fail"
)

// Outcome summarizes what a notifier did.
type Outcome string

// Notifier outcomes.
const (
	// OutcomeOK means the comment was created or updated.
	OutcomeOK Outcome = "ok"
	// OutcomeSkipped means there was no comment to update.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the notification could not be delivered. Err says why.
	OutcomeFailed Outcome = "failed"
)

// Result is the outcome of one notifier run.
type Result struct {
	Phase     Phase
	Outcome   Outcome
	CommentID string
	Minutes   int
	Err       error
}

// Policy decides whether a failed notification fails the process.
type Policy int

const (
	// Lenient never reports an error: notification problems must not fail
	// the surrounding workflow.
	Lenient Policy = iota
	// Strict reports the error carried by the result.
	Strict
)

// PolicyFor returns Strict when strict is set, Lenient otherwise.
func PolicyFor(strict bool) Policy {
	if strict {
		return Strict
	}
	return Lenient
}

// Resolve maps r to the error the process should exit with, or nil.
func (p Policy) Resolve(r Result) error {
	if p != Strict || r.Err == nil {
		return nil
	}
	return fmt.Errorf("%s notification failed: %w", r.Phase, r.Err)
}

// String returns "lenient" or "strict".
func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}
