package stagetest

import (
	"time"

	"github.com/abhisek/wordwave/internal/scoring"
)

// Summary holds the data displayed when a session ends.
type Summary struct {
	Duration      time.Duration
	TotalWords    int
	MasteredCount int
	SkippedCount  int
	TotalAnswered int
	CorrectCount  int
	Accuracy      float64
	BestCombo     int

	// ServerResult is the collaborator's completion summary, nil when the
	// report could not be delivered.
	ServerResult *scoring.CompletionSummary
}

// Summary builds the end-of-session view from the current session state.
func (o *Orchestrator) Summary() *Summary {
	s := o.session
	if s == nil {
		return nil
	}
	return &Summary{
		Duration:      time.Since(s.StartTime),
		TotalWords:    s.TotalWords,
		MasteredCount: s.MasteredCount,
		SkippedCount:  s.SkippedCount,
		TotalAnswered: s.TotalAnswered,
		CorrectCount:  s.CorrectCount,
		Accuracy:      s.Accuracy(),
		BestCombo:     s.BestCombo,
		ServerResult:  s.CompletionResult,
	}
}
