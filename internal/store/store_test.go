package store

import (
	"context"
	"testing"

	"github.com/abhisek/wordwave/internal/ledger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openTestRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("open event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestAppendAndQuerySessionEvents(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "s1",
		TestCode:   "ANIMALS",
		Action:     "start",
		TotalWords: 10,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	for i, code := range []string{"ANIMALS", "COLORS"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:      "s1",
			TestCode:       code,
			Action:         "complete",
			TotalWords:     10,
			TotalAnswered:  20 + i,
			CorrectAnswers: 15,
			MasteredCount:  8,
			SkippedCount:   2,
			BestCombo:      6,
		})
		if err != nil {
			t.Fatalf("append complete %d: %v", i, err)
		}
	}

	records, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}

	// Only completions, newest first.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].TestCode != "COLORS" || records[1].TestCode != "ANIMALS" {
		t.Errorf("order = %s, %s; want newest first", records[0].TestCode, records[1].TestCode)
	}
	if records[0].MasteredCount != 8 || records[0].BestCombo != 6 {
		t.Errorf("record = %+v", records[0])
	}
}

func TestRecentSessionsHonorsLimit(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "s1",
			TestCode:  "ANIMALS",
			Action:    "complete",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentSessions(ctx, 3)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestWordAccuracy(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	answers := []struct {
		word    string
		correct bool
	}{
		{"dog", true},
		{"dog", false},
		{"dog", true},
		{"cat", false},
	}
	for i, a := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     "s1",
			WordMasteryID: 1,
			WordText:      a.word,
			Stage:         1,
			QuestionType:  "choice",
			StudentAnswer: "x",
			CorrectAnswer: "y",
			Correct:       a.correct,
			TimeMs:        1200,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	correct, total, err := repo.WordAccuracy(ctx, "dog")
	if err != nil {
		t.Fatalf("word accuracy: %v", err)
	}
	if correct != 2 || total != 3 {
		t.Errorf("accuracy = %d/%d, want 2/3", correct, total)
	}

	correct, total, err = repo.WordAccuracy(ctx, "bird")
	if err != nil {
		t.Fatalf("word accuracy (unseen): %v", err)
	}
	if correct != 0 || total != 0 {
		t.Errorf("unseen word accuracy = %d/%d, want 0/0", correct, total)
	}
}

func TestOutcomeTotals(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	transitions := []struct {
		to string
	}{
		{string(ledger.StatusActive)},
		{string(ledger.StatusMastered)},
		{string(ledger.StatusMastered)},
		{string(ledger.StatusSkipped)},
	}
	for i, tr := range transitions {
		err := repo.AppendWordEvent(ctx, WordEventData{
			SessionID:     "s1",
			WordMasteryID: int64(i + 1),
			WordText:      "w",
			FromStatus:    string(ledger.StatusActive),
			ToStatus:      tr.to,
			Trigger:       "t",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	mastered, skipped, err := repo.OutcomeTotals(ctx)
	if err != nil {
		t.Fatalf("outcome totals: %v", err)
	}
	if mastered != 2 || skipped != 1 {
		t.Errorf("totals = %d mastered, %d skipped; want 2, 1", mastered, skipped)
	}
}

func TestEventsShareOneSequence(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", TestCode: "A", Action: "start"}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendWordEvent(ctx, WordEventData{
		SessionID: "s1", WordMasteryID: 1, WordText: "w",
		FromStatus: "untested", ToStatus: "active", Trigger: "admitted",
	}); err != nil {
		t.Fatalf("append word event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", WordMasteryID: 1, WordText: "w",
		Stage: 1, QuestionType: "choice", CorrectAnswer: "y",
	}); err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	we, err := s.Client().WordEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query word event: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}

	if se.Sequence != 1 || we.Sequence != 2 || ae.Sequence != 3 {
		t.Errorf("sequences = %d, %d, %d; want 1, 2, 3 across event types",
			se.Sequence, we.Sequence, ae.Sequence)
	}
}
