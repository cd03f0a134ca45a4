package ledger

// Status represents a word's position in the drilling lifecycle.
// Transitions only move forward: untested → active → mastered or skipped.
type Status string

const (
	StatusUntested Status = "untested"
	StatusActive   Status = "active"
	StatusMastered Status = "mastered"
	StatusSkipped  Status = "skipped"
)

// Terminal reports whether the status ends further drilling for a word.
func (s Status) Terminal() bool {
	return s == StatusMastered || s == StatusSkipped
}

// StateTransition records a word status change for display and event logging.
type StateTransition struct {
	MasteryID int64
	From      Status
	To        Status
	Trigger   string // "admitted", "stage-advance", "word-mastered", "fails-exhausted"
}
