package store

import (
	"context"
	"time"

	"github.com/abhisek/wordwave/ent"
)

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	SessionID     string
	WordMasteryID int64
	WordText      string
	Stage         int
	QuestionType  string
	StudentAnswer string
	CorrectAnswer string
	Correct       bool
	Almost        bool
	TimeMs        int
}

// WordEventData captures one word status transition.
type WordEventData struct {
	SessionID     string
	WordMasteryID int64
	WordText      string
	FromStatus    string
	ToStatus      string
	Trigger       string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	TestCode       string
	Action         string // "start" or "complete"
	TotalWords     int
	TotalAnswered  int
	CorrectAnswers int
	MasteredCount  int
	SkippedCount   int
	BestCombo      int
}

// SessionRecord is a completed-session row for the stats view.
type SessionRecord struct {
	SessionID      string
	TestCode       string
	Timestamp      time.Time
	TotalWords     int
	TotalAnswered  int
	CorrectAnswers int
	MasteredCount  int
	SkippedCount   int
	BestCombo      int
}

// EventRepo provides append access to the attempt history plus the
// aggregate queries the stats view needs. Appends are best-effort from the
// engine's perspective; a failed append never fails a session.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendWordEvent(ctx context.Context, data WordEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns the most recent completed sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// WordAccuracy returns lifetime correct/total answer counts for a word text.
	WordAccuracy(ctx context.Context, wordText string) (correct, total int, err error)

	// OutcomeTotals returns lifetime mastered and skipped word counts.
	OutcomeTotals(ctx context.Context) (mastered, skipped int, err error)
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
