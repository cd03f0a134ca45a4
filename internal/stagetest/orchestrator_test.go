package stagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/wordwave/internal/ledger"
	"github.com/abhisek/wordwave/internal/scoring"
	"github.com/abhisek/wordwave/internal/store"
	"github.com/abhisek/wordwave/internal/wave"
)

func testWords(n int) []scoring.Word {
	words := make([]scoring.Word, n)
	for i := range words {
		words[i] = scoring.Word{
			WordMasteryID: int64(i + 1),
			WordID:        int64((i + 1) * 100),
			Text:          "word",
			Translation:   "palabra",
		}
	}
	return words
}

func question(masteryID int64) scoring.Question {
	return scoring.Question{
		WordMasteryID: masteryID,
		Stage:         1,
		QuestionType:  "choice",
		Prompt:        "translate",
		CorrectAnswer: "palabra",
	}
}

func questionsFor(ids ...int64) []scoring.Question {
	out := make([]scoring.Question, len(ids))
	for i, id := range ids {
		out[i] = question(id)
	}
	return out
}

func startResult(words []scoring.Word, initial []scoring.Question) scoring.MockResult[scoring.StartResult] {
	return scoring.MockResult[scoring.StartResult]{Value: &scoring.StartResult{
		SessionID:        "sess-1",
		AssignmentID:     42,
		Words:            words,
		InitialQuestions: initial,
		TotalWords:       len(words),
		MaxFails:         3,
	}}
}

func correctVerdict(newStage int, mastered bool) scoring.MockResult[scoring.AnswerVerdict] {
	return scoring.MockResult[scoring.AnswerVerdict]{Value: &scoring.AnswerVerdict{
		IsCorrect:     true,
		CorrectAnswer: "palabra",
		NewStage:      newStage,
		WordMastered:  mastered,
	}}
}

func incorrectVerdict() scoring.MockResult[scoring.AnswerVerdict] {
	return scoring.MockResult[scoring.AnswerVerdict]{Value: &scoring.AnswerVerdict{
		IsCorrect:     false,
		CorrectAnswer: "palabra",
	}}
}

func summaryResult() scoring.MockResult[scoring.CompletionSummary] {
	return scoring.MockResult[scoring.CompletionSummary]{Value: &scoring.CompletionSummary{
		Accuracy: 0.5,
	}}
}

func mustStart(t *testing.T, orch *Orchestrator, code string) {
	t.Helper()
	if err := orch.Start(context.Background(), code, false); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

func mustSubmit(t *testing.T, orch *Orchestrator, answer string) *AnswerResult {
	t.Helper()
	result, err := orch.Submit(context.Background(), answer, time.Second)
	if err != nil {
		t.Fatalf("Submit(%q): %v", answer, err)
	}
	return result
}

func TestStartBootstrapsSession(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(4), questionsFor(1, 2)),
		},
	}
	orch := New(mock, Options{Wave: wave.Controller{InitialBatch: 2, RefillThreshold: 1}})

	mustStart(t, orch, "ABC123")

	s := orch.Session()
	if s.SessionID != "sess-1" || s.TestCode != "ABC123" || s.MaxFails != 3 || s.TotalWords != 4 {
		t.Errorf("session = %+v", s)
	}
	if s.AttemptID == "" {
		t.Error("AttemptID not generated")
	}

	words := orch.Words()
	if got := words.Count(ledger.StatusActive); got != 2 {
		t.Errorf("active = %d, want 2 (initial batch)", got)
	}
	if got := words.Count(ledger.StatusUntested); got != 2 {
		t.Errorf("untested = %d, want 2", got)
	}
	for _, id := range []int64{1, 2} {
		if w := words.Get(id); w.Status != ledger.StatusActive || w.Stage != 1 {
			t.Errorf("word %d = %+v, want active at stage 1", id, w)
		}
	}

	q, err := orch.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if q.WordMasteryID != 1 {
		t.Errorf("first question for word %d, want 1", q.WordMasteryID)
	}
}

func TestStartPropagatesBadCode(t *testing.T) {
	orch := New(&scoring.MockClient{}, Options{})

	err := orch.Start(context.Background(), "NOPE", false)
	if !errors.Is(err, scoring.ErrBadCode) {
		t.Errorf("Start error = %v, want ErrBadCode", err)
	}
}

func TestStartTwiceFails(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(1), questionsFor(1)),
		},
	}
	orch := New(mock, Options{})
	mustStart(t, orch, "ABC123")

	if err := orch.Start(context.Background(), "ABC123", false); err == nil {
		t.Error("second Start should fail")
	}
}

// TestFullRun drives a complete session: four words, a two-word wave with a
// refill threshold of one, three fails to skip a word. W1 is failed out, the
// rest are mastered on the first try.
func TestFullRun(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(4), questionsFor(1, 1, 1, 2, 3, 4)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			incorrectVerdict(),
			incorrectVerdict(),
			incorrectVerdict(),
			correctVerdict(5, true),
			correctVerdict(5, true),
			correctVerdict(5, true),
		},
		Summaries: []scoring.MockResult[scoring.CompletionSummary]{summaryResult()},
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 2, RefillThreshold: 1},
		FetchThreshold: 1,
	})
	mustStart(t, orch, "ABC123")

	// W1 miss 1 and 2: a life lost each time, no transition, no refill
	// while two words are still active.
	for i := 0; i < 2; i++ {
		result := mustSubmit(t, orch, "wrong")
		if result.Transition != nil {
			t.Errorf("miss %d caused transition %+v", i+1, result.Transition)
		}
		if len(result.Admitted) != 0 {
			t.Errorf("miss %d admitted %d words", i+1, len(result.Admitted))
		}
	}
	if got := orch.Words().Get(1).FailCount; got != 2 {
		t.Fatalf("W1 FailCount = %d, want 2", got)
	}

	// W1 miss 3: skipped, pool drains to one, refill admits W3.
	result := mustSubmit(t, orch, "wrong")
	if result.Transition == nil || result.Transition.Trigger != "fails-exhausted" {
		t.Fatalf("transition = %+v, want fails-exhausted", result.Transition)
	}
	if len(result.Admitted) != 1 || result.Admitted[0].MasteryID != 3 {
		t.Fatalf("admitted = %+v, want W3", result.Admitted)
	}

	// W2 mastered: pool drains to one again, refill admits W4.
	result = mustSubmit(t, orch, "palabra")
	if result.Transition == nil || result.Transition.Trigger != "word-mastered" {
		t.Fatalf("transition = %+v, want word-mastered", result.Transition)
	}
	if len(result.Admitted) != 1 || result.Admitted[0].MasteryID != 4 {
		t.Fatalf("admitted = %+v, want W4", result.Admitted)
	}

	// W3 mastered: reserve is empty, nothing to admit, session continues.
	result = mustSubmit(t, orch, "palabra")
	if len(result.Admitted) != 0 {
		t.Errorf("admitted = %+v, want none", result.Admitted)
	}
	if result.Completed {
		t.Error("completed with W4 still active")
	}

	// W4 mastered: every word terminal, session completes.
	result = mustSubmit(t, orch, "palabra")
	if !result.Completed {
		t.Fatal("want completion on the final answer")
	}

	s := orch.Session()
	if !s.Completed {
		t.Error("session not marked completed")
	}
	if s.MasteredCount != 3 || s.SkippedCount != 1 {
		t.Errorf("mastered/skipped = %d/%d, want 3/1", s.MasteredCount, s.SkippedCount)
	}
	if s.TotalAnswered != 6 || s.CorrectCount != 3 {
		t.Errorf("answered/correct = %d/%d, want 6/3", s.TotalAnswered, s.CorrectCount)
	}
	if s.BestCombo != 3 {
		t.Errorf("BestCombo = %d, want 3", s.BestCombo)
	}
	if s.CompletionResult == nil {
		t.Error("server summary not stored")
	}
	if got := mock.CompleteCount(); got != 1 {
		t.Errorf("Complete called %d times, want 1", got)
	}

	// The completed session rejects further interaction and never
	// re-reports.
	if _, err := orch.Current(); !errors.Is(err, ErrCompleted) {
		t.Errorf("Current after completion = %v, want ErrCompleted", err)
	}
	if _, err := orch.Submit(context.Background(), "x", 0); !errors.Is(err, ErrCompleted) {
		t.Errorf("Submit after completion = %v, want ErrCompleted", err)
	}
	if got := mock.CompleteCount(); got != 1 {
		t.Errorf("Complete called %d times after extra submits, want 1", got)
	}
}

func TestComboTracking(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(2), questionsFor(1, 2, 1, 2, 1)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			correctVerdict(2, false),
			correctVerdict(2, false),
			incorrectVerdict(),
			correctVerdict(3, false),
			// Near-miss graded correct by the server still extends the run.
			{Value: &scoring.AnswerVerdict{IsCorrect: true, AlmostCorrect: true, CorrectAnswer: "palabra", NewStage: 3}},
		},
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 2, RefillThreshold: 1},
		FetchThreshold: 1,
	})
	mustStart(t, orch, "ABC123")

	wantCombos := []int{1, 2, 0, 1, 2}
	for i, want := range wantCombos {
		mustSubmit(t, orch, "a")
		if got := orch.Session().Combo; got != want {
			t.Errorf("after answer %d: Combo = %d, want %d", i+1, got, want)
		}
	}
	if got := orch.Session().BestCombo; got != 2 {
		t.Errorf("BestCombo = %d, want 2", got)
	}
}

func TestAlmostCorrectDoesNotTouchLedger(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(2), questionsFor(1)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			{Value: &scoring.AnswerVerdict{IsCorrect: false, AlmostCorrect: true, CorrectAnswer: "palabra"}},
		},
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 2, RefillThreshold: 1},
		FetchThreshold: 1,
	})
	mustStart(t, orch, "ABC123")

	result := mustSubmit(t, orch, "palabre")

	w := orch.Words().Get(1)
	if w.FailCount != 0 || w.Stage != 1 {
		t.Errorf("word = %+v, want untouched at stage 1 with 0 fails", w)
	}
	if result.Transition != nil {
		t.Errorf("transition = %+v, want nil", result.Transition)
	}
	// The answer still counts toward statistics.
	if got := orch.Session().TotalAnswered; got != 1 {
		t.Errorf("TotalAnswered = %d, want 1", got)
	}
}

func TestSubmitWithoutQuestionIsRejected(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(2), nil),
		},
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 2, RefillThreshold: 1},
		FetchThreshold: 1,
	})
	mustStart(t, orch, "ABC123")

	_, err := orch.Submit(context.Background(), "a", 0)
	if !errors.Is(err, ErrNoQuestion) {
		t.Fatalf("Submit = %v, want ErrNoQuestion", err)
	}

	// No grading call was made and no state moved.
	if len(mock.AnswerCalls) != 0 {
		t.Errorf("SubmitAnswer called %d times, want 0", len(mock.AnswerCalls))
	}
	if got := orch.Session().TotalAnswered; got != 0 {
		t.Errorf("TotalAnswered = %d, want 0", got)
	}
}

func TestSubmitServerFailureLeavesStateUnchanged(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(2), questionsFor(1, 2)),
		},
		// No canned verdicts: SubmitAnswer fails.
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 2, RefillThreshold: 1},
		FetchThreshold: 1,
	})
	mustStart(t, orch, "ABC123")

	_, err := orch.Submit(context.Background(), "a", time.Second)
	if err == nil {
		t.Fatal("want submission error")
	}

	// The question stays under the cursor for a retry.
	q, qerr := orch.Current()
	if qerr != nil || q.WordMasteryID != 1 {
		t.Errorf("Current = %+v, %v, want word 1 still in place", q, qerr)
	}
	s := orch.Session()
	if s.TotalAnswered != 0 || s.Combo != 0 {
		t.Errorf("stats mutated on failed submit: %+v", s)
	}
	if w := orch.Words().Get(1); w.FailCount != 0 {
		t.Errorf("FailCount = %d, want 0", w.FailCount)
	}
}

func TestSingleFetchInFlight(t *testing.T) {
	gate := make(chan struct{})
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(4), questionsFor(1, 2, 3, 4)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			correctVerdict(2, false),
			correctVerdict(2, false),
			correctVerdict(2, false),
		},
		Batches: []scoring.MockResult[scoring.QuestionBatch]{
			{Value: &scoring.QuestionBatch{Questions: questionsFor(1, 2)}},
		},
		FetchGate: gate,
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 4, RefillThreshold: 1},
		FetchThreshold: 5,
	})
	mustStart(t, orch, "ABC123")

	// Every submit leaves the queue under the fetch threshold, but only the
	// first may start a fetch; the held fetch blocks the rest.
	mustSubmit(t, orch, "a")
	mustSubmit(t, orch, "a")
	mustSubmit(t, orch, "a")

	if got := mock.FetchCount(); got != 1 {
		t.Fatalf("fetch calls = %d, want exactly 1 in flight", got)
	}

	close(gate)
	if err := orch.WaitForQuestions(context.Background()); err != nil {
		t.Fatalf("WaitForQuestions: %v", err)
	}

	// The resolved batch lands behind the cursor on the next access.
	q, err := orch.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if q.WordMasteryID != 4 {
		t.Errorf("Current word = %d, want 4 (cursor never moved by a fetch)", q.WordMasteryID)
	}
}

func TestStarvedQueueWithFetchInFlight(t *testing.T) {
	gate := make(chan struct{})
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(2), questionsFor(1)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			correctVerdict(2, false),
		},
		Batches: []scoring.MockResult[scoring.QuestionBatch]{
			{Value: &scoring.QuestionBatch{Questions: questionsFor(2)}},
		},
		FetchGate: gate,
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 2, RefillThreshold: 0},
		FetchThreshold: 2,
	})
	mustStart(t, orch, "ABC123")

	mustSubmit(t, orch, "a")

	if _, err := orch.Current(); !errors.Is(err, ErrLoading) {
		t.Fatalf("Current = %v, want ErrLoading while starved with a fetch in flight", err)
	}

	close(gate)
	if err := orch.WaitForQuestions(context.Background()); err != nil {
		t.Fatalf("WaitForQuestions: %v", err)
	}

	q, err := orch.Current()
	if err != nil {
		t.Fatalf("Current after fetch: %v", err)
	}
	if q.WordMasteryID != 2 {
		t.Errorf("Current word = %d, want 2", q.WordMasteryID)
	}
}

func TestFetchFailureSurfacesOnStarvation(t *testing.T) {
	fetchErr := errors.New("server down")
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(2), questionsFor(1)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			correctVerdict(2, false),
		},
		Batches: []scoring.MockResult[scoring.QuestionBatch]{
			{Err: fetchErr},
			{Value: &scoring.QuestionBatch{Questions: questionsFor(2)}},
		},
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 2, RefillThreshold: 0},
		FetchThreshold: 2,
	})
	mustStart(t, orch, "ABC123")

	mustSubmit(t, orch, "a")
	if err := orch.WaitForQuestions(context.Background()); err != nil {
		t.Fatalf("WaitForQuestions: %v", err)
	}

	// The failed prefetch surfaces through Current; the engine schedules no
	// retry of its own.
	if _, err := orch.Current(); !errors.Is(err, fetchErr) {
		t.Fatalf("Current = %v, want the recorded fetch error", err)
	}
	if got := mock.FetchCount(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1 (no automatic retry)", got)
	}

	// An explicit re-trigger clears the error and fetches again.
	if !orch.RequestQuestions(context.Background()) {
		t.Fatal("RequestQuestions refused")
	}
	if err := orch.WaitForQuestions(context.Background()); err != nil {
		t.Fatalf("WaitForQuestions: %v", err)
	}
	q, err := orch.Current()
	if err != nil {
		t.Fatalf("Current after retry: %v", err)
	}
	if q.WordMasteryID != 2 {
		t.Errorf("Current word = %d, want 2", q.WordMasteryID)
	}
}

func TestCompletionReportFailureIsRecorded(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(1), questionsFor(1)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			correctVerdict(5, true),
		},
		// No canned summaries: Complete fails.
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 1, RefillThreshold: 0},
		FetchThreshold: 1,
	})
	mustStart(t, orch, "ABC123")

	result := mustSubmit(t, orch, "palabra")
	if !result.Completed {
		t.Fatal("want completion")
	}

	s := orch.Session()
	if !s.Completed {
		t.Error("completed state rolled back on report failure")
	}
	if s.ReportErr == nil {
		t.Error("ReportErr not recorded")
	}
	if s.CompletionResult != nil {
		t.Errorf("CompletionResult = %+v, want nil", s.CompletionResult)
	}
}

// recordingRepo is an in-memory EventRepo capturing appends.
type recordingRepo struct {
	answers  []store.AnswerEventData
	words    []store.WordEventData
	sessions []store.SessionEventData
}

func (r *recordingRepo) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	r.answers = append(r.answers, d)
	return nil
}

func (r *recordingRepo) AppendWordEvent(_ context.Context, d store.WordEventData) error {
	r.words = append(r.words, d)
	return nil
}

func (r *recordingRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	r.sessions = append(r.sessions, d)
	return nil
}

func (r *recordingRepo) RecentSessions(context.Context, int) ([]store.SessionRecord, error) {
	return nil, nil
}

func (r *recordingRepo) WordAccuracy(context.Context, string) (int, int, error) {
	return 0, 0, nil
}

func (r *recordingRepo) OutcomeTotals(context.Context) (int, int, error) {
	return 0, 0, nil
}

func TestEventLogging(t *testing.T) {
	repo := &recordingRepo{}
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(1), questionsFor(1)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			correctVerdict(5, true),
		},
		Summaries: []scoring.MockResult[scoring.CompletionSummary]{summaryResult()},
	}
	orch := New(mock, Options{
		Events:         repo,
		Wave:           wave.Controller{InitialBatch: 1, RefillThreshold: 0},
		FetchThreshold: 1,
	})
	mustStart(t, orch, "ABC123")
	mustSubmit(t, orch, "palabra")

	// One admission, one mastery.
	if len(repo.words) != 2 {
		t.Fatalf("word events = %d, want 2", len(repo.words))
	}
	if repo.words[0].Trigger != "admitted" || repo.words[1].Trigger != "word-mastered" {
		t.Errorf("word event triggers = %s, %s", repo.words[0].Trigger, repo.words[1].Trigger)
	}

	if len(repo.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answers))
	}
	if a := repo.answers[0]; !a.Correct || a.SessionID != "sess-1" || a.WordMasteryID != 1 {
		t.Errorf("answer event = %+v", a)
	}

	// Start and complete lifecycle events.
	if len(repo.sessions) != 2 {
		t.Fatalf("session events = %d, want 2", len(repo.sessions))
	}
	if repo.sessions[0].Action != "start" || repo.sessions[1].Action != "complete" {
		t.Errorf("session actions = %s, %s", repo.sessions[0].Action, repo.sessions[1].Action)
	}
	if repo.sessions[1].MasteredCount != 1 {
		t.Errorf("complete event mastered = %d, want 1", repo.sessions[1].MasteredCount)
	}
}

func TestSummary(t *testing.T) {
	mock := &scoring.MockClient{
		StartResults: []scoring.MockResult[scoring.StartResult]{
			startResult(testWords(1), questionsFor(1)),
		},
		Verdicts: []scoring.MockResult[scoring.AnswerVerdict]{
			correctVerdict(5, true),
		},
		Summaries: []scoring.MockResult[scoring.CompletionSummary]{summaryResult()},
	}
	orch := New(mock, Options{
		Wave:           wave.Controller{InitialBatch: 1, RefillThreshold: 0},
		FetchThreshold: 1,
	})

	if orch.Summary() != nil {
		t.Error("Summary before Start should be nil")
	}

	mustStart(t, orch, "ABC123")
	mustSubmit(t, orch, "palabra")

	sum := orch.Summary()
	if sum.MasteredCount != 1 || sum.TotalAnswered != 1 || sum.Accuracy != 1.0 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.ServerResult == nil {
		t.Error("ServerResult not carried into the summary")
	}
}

func TestCurrentBeforeStart(t *testing.T) {
	orch := New(&scoring.MockClient{}, Options{})
	if _, err := orch.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Current = %v, want ErrNoSession", err)
	}
	if _, err := orch.Submit(context.Background(), "a", 0); !errors.Is(err, ErrNoSession) {
		t.Errorf("Submit = %v, want ErrNoSession", err)
	}
}
