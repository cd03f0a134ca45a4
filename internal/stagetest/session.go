package stagetest

import (
	"time"

	"github.com/abhisek/wordwave/internal/scoring"
)

// Session is the aggregate owning the running statistics for one student
// attempt. It is created by Start, mutated throughout the run, and marked
// complete exactly once — retrying a test requires a fresh orchestrator.
type Session struct {
	// SessionID is the server-issued session identity.
	SessionID string

	// AssignmentID ties the session to its assignment on the server.
	AssignmentID int64

	// AttemptID is a locally generated UUID grouping this attempt's events
	// in the local store.
	AttemptID string

	TestCode    string
	StudentName string

	// MaxFails is the configured failure ceiling per word.
	MaxFails int

	TotalWords    int
	MasteredCount int
	SkippedCount  int

	TotalAnswered int
	CorrectCount  int

	// Combo counts consecutive correct answers; BestCombo is its running
	// maximum.
	Combo     int
	BestCombo int

	StartTime time.Time

	// Completed flips once, when no words remain active or untested.
	Completed bool

	// CompletionResult holds the server's summary, populated only after
	// finalization succeeds.
	CompletionResult *scoring.CompletionSummary

	// ReportErr records a completion-report delivery failure. The visible
	// completed state is never rolled back on report failure.
	ReportErr error
}

// Accuracy returns the running correct-answer ratio.
func (s *Session) Accuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(s.TotalAnswered)
}
