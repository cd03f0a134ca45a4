package stagetest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/wordwave/internal/ledger"
	"github.com/abhisek/wordwave/internal/queue"
	"github.com/abhisek/wordwave/internal/scoring"
	"github.com/abhisek/wordwave/internal/store"
	"github.com/abhisek/wordwave/internal/wave"
)

// Options configures an Orchestrator. Zero values select defaults.
type Options struct {
	// Events receives best-effort attempt history; nil disables logging.
	Events store.EventRepo

	// Logger receives engine diagnostics; nil selects a no-op logger.
	Logger *zap.Logger

	// Wave overrides the admission controller sizing.
	Wave wave.Controller

	// FetchThreshold overrides the queue prefetch trigger.
	FetchThreshold int
}

// Orchestrator drives one stage-test attempt. It composes the word ledger,
// wave admission controller, question queue, and scoring client behind a
// single façade. All state mutation happens inside its synchronous methods;
// callers drive it from one goroutine at a time, and the only code running
// concurrently — the batch fetcher — hands its results back through Consume
// on that same synchronous path.
type Orchestrator struct {
	client  scoring.Client
	events  store.EventRepo
	log     *zap.Logger
	wave    wave.Controller
	fetchAt int

	session *Session
	words   *ledger.Ledger
	queue   *queue.Queue
	fetcher *queue.Fetcher

	// fetchErr holds the last failed prefetch, surfaced when the queue
	// starves. The core schedules no retry; callers re-trigger.
	fetchErr error
}

// New creates an Orchestrator for a single attempt.
func New(client scoring.Client, opts Options) *Orchestrator {
	w := opts.Wave
	if w.InitialBatch == 0 {
		w = wave.NewController()
	}
	threshold := opts.FetchThreshold
	if threshold == 0 {
		threshold = queue.DefaultFetchThreshold
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		client:  client,
		events:  opts.Events,
		log:     log,
		wave:    w,
		fetchAt: threshold,
		fetcher: queue.NewFetcher(client),
	}
}

// Start bootstraps the session from a test code: pulls the word set and
// first question batch, builds the ledger, and admits the first wave.
func (o *Orchestrator) Start(ctx context.Context, code string, allowRestart bool) error {
	if o.session != nil {
		return fmt.Errorf("orchestrator already started")
	}
	if err := o.wave.Validate(); err != nil {
		return fmt.Errorf("wave config: %w", err)
	}

	result, err := o.client.StartByCode(ctx, code, allowRestart)
	if err != nil {
		return fmt.Errorf("start by code: %w", err)
	}

	words := ledger.New()
	for _, sw := range result.Words {
		w := &ledger.Word{
			MasteryID:   sw.WordMasteryID,
			WordID:      sw.WordID,
			Text:        sw.Text,
			Translation: sw.Translation,
			Difficulty:  sw.Difficulty,
			Status:      ledger.StatusUntested,
		}
		if err := words.Add(w); err != nil {
			return fmt.Errorf("build ledger: %w", err)
		}
	}

	session := &Session{
		SessionID:    result.SessionID,
		AssignmentID: result.AssignmentID,
		AttemptID:    uuid.New().String(),
		TestCode:     code,
		StudentName:  result.StudentName,
		MaxFails:     result.MaxFails,
		TotalWords:   result.TotalWords,
		StartTime:    time.Now(),
	}

	o.session = session
	o.words = words
	o.queue = queue.New(result.InitialQuestions)

	admitted := o.wave.AdmitInitial(words)
	o.logTransitions(ctx, admitted)

	o.appendSessionEvent(ctx, "start", 0)
	return nil
}

// Session returns the session aggregate, or nil before Start.
func (o *Orchestrator) Session() *Session {
	return o.session
}

// Words returns the word ledger for display purposes.
func (o *Orchestrator) Words() *ledger.Ledger {
	return o.words
}

// Current returns the question under the cursor.
// Returns ErrLoading when the queue is starved with a fetch in flight,
// ErrCompleted after the session finishes, and the recorded fetch error when
// the queue starved because a prefetch failed.
func (o *Orchestrator) Current() (*scoring.Question, error) {
	if o.session == nil {
		return nil, ErrNoSession
	}
	if o.session.Completed {
		return nil, ErrCompleted
	}

	o.drainFetch()

	if q := o.queue.Current(); q != nil {
		return q, nil
	}
	if o.fetcher.InFlight() {
		return nil, ErrLoading
	}
	if o.fetchErr != nil {
		return nil, o.fetchErr
	}
	return nil, ErrNoQuestion
}

// RequestQuestions re-triggers a prefetch, clearing any recorded fetch
// error. Returns whether a fetch was started. Used by callers after a fetch
// failure; the engine itself never retries.
func (o *Orchestrator) RequestQuestions(ctx context.Context) bool {
	if o.session == nil || o.session.Completed {
		return false
	}
	o.fetchErr = nil
	return o.requestBatch(ctx)
}

// WaitForQuestions blocks until the in-flight fetch resolves or ctx ends.
// This is the engine's only blocking point, entered when the cursor reaches
// the end of the queue before a fetch delivers.
func (o *Orchestrator) WaitForQuestions(ctx context.Context) error {
	done := o.fetcher.Done()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AnswerResult is what one Submit call produced, for feedback display.
type AnswerResult struct {
	Verdict scoring.AnswerVerdict

	// Word is the ledger entry the verdict was applied to.
	Word *ledger.Word

	// Transition is the word's status change, if the verdict caused one.
	Transition *ledger.StateTransition

	// Admitted lists words the wave controller activated as a result.
	Admitted []*ledger.Word

	// Completed reports whether this answer finished the session.
	Completed bool
}

// Submit grades the question under the cursor. It submits the answer to the
// scoring collaborator, applies the verdict to the matching word, updates
// run statistics, refills the wave, advances the cursor, triggers prefetch,
// and checks completion — all atomically with respect to this one call.
//
// If no session or no question exists under the cursor, Submit fails with
// an invalid-state error and performs no mutation. A submission failure from
// the collaborator likewise leaves everything unmutated; the student may
// retry the same question.
func (o *Orchestrator) Submit(ctx context.Context, answer string, elapsed time.Duration) (*AnswerResult, error) {
	if o.session == nil {
		return nil, ErrNoSession
	}
	if o.session.Completed {
		return nil, ErrCompleted
	}
	q := o.queue.Current()
	if q == nil {
		if o.fetcher.InFlight() {
			return nil, ErrLoading
		}
		return nil, ErrNoQuestion
	}

	verdict, err := o.client.SubmitAnswer(ctx, scoring.AnswerRequest{
		SessionID:        o.session.SessionID,
		WordMasteryID:    q.WordMasteryID,
		SelectedAnswer:   answer,
		TimeTakenSeconds: elapsed.Seconds(),
		Stage:            q.Stage,
		QuestionType:     q.QuestionType,
	})
	if err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	result := o.applyVerdict(ctx, q, answer, elapsed, *verdict)

	o.queue.Advance()
	o.maybePrefetch(ctx)

	if o.finalizeIfDone(ctx) {
		result.Completed = true
	}
	return result, nil
}

// applyVerdict runs the answer submission coordinator's side effects:
// statistics, combo, the stage state machine, and the wave refill.
func (o *Orchestrator) applyVerdict(ctx context.Context, q *scoring.Question, answer string, elapsed time.Duration, verdict scoring.AnswerVerdict) *AnswerResult {
	s := o.session

	s.TotalAnswered++
	if verdict.IsCorrect {
		s.CorrectCount++
		s.Combo++
		if s.Combo > s.BestCombo {
			s.BestCombo = s.Combo
		}
	} else {
		s.Combo = 0
	}

	result := &AnswerResult{Verdict: verdict}

	// Operate only on the word matching the just-answered question; a stale
	// verdict can never reach a different or already-terminal word.
	w := o.words.Get(q.WordMasteryID)
	if w != nil {
		result.Word = w
		transition := ledger.ApplyVerdict(w, ledger.Verdict{
			IsCorrect:     verdict.IsCorrect,
			AlmostCorrect: verdict.AlmostCorrect,
			CorrectAnswer: verdict.CorrectAnswer,
			NewStage:      verdict.NewStage,
			WordMastered:  verdict.WordMastered,
		}, s.MaxFails)
		result.Transition = transition

		if transition != nil {
			switch transition.To {
			case ledger.StatusMastered:
				s.MasteredCount++
			case ledger.StatusSkipped:
				s.SkippedCount++
			}
			o.logTransitions(ctx, []*ledger.StateTransition{transition})
		}

		o.appendAnswerEvent(ctx, q, w, answer, elapsed, verdict)
	}

	admitted := o.wave.Refill(o.words)
	o.logTransitions(ctx, admitted)
	for _, t := range admitted {
		result.Admitted = append(result.Admitted, o.words.Get(t.MasteryID))
	}

	return result
}

// maybePrefetch drains any resolved fetch into the queue, then requests a
// new batch when the queue is running low and nothing is already in flight.
func (o *Orchestrator) maybePrefetch(ctx context.Context) {
	o.drainFetch()

	if o.queue.Remaining() >= o.fetchAt {
		return
	}
	if o.wave.Done(o.words) {
		return
	}
	o.requestBatch(ctx)
}

// requestBatch starts an async fetch for the current active words, passing
// each word's fail count so the server can bias question difficulty.
func (o *Orchestrator) requestBatch(ctx context.Context) bool {
	active := o.words.ActiveWords()
	if len(active) == 0 {
		return false
	}

	ids := make([]int64, len(active))
	errCounts := make([]int, len(active))
	for i, w := range active {
		ids[i] = w.MasteryID
		errCounts[i] = w.FailCount
	}

	return o.fetcher.Request(ctx, scoring.FetchRequest{
		SessionID:      o.session.SessionID,
		WordMasteryIDs: ids,
		ErrorCounts:    errCounts,
	})
}

// drainFetch appends a resolved batch to the queue, in arrival order.
// The cursor is never moved by a fetch.
func (o *Orchestrator) drainFetch() {
	batch, err, ok := o.fetcher.Consume()
	if !ok {
		return
	}
	if err != nil {
		o.fetchErr = fmt.Errorf("fetch questions: %w", err)
		o.log.Warn("question batch fetch failed", zap.Error(err))
		return
	}
	o.fetchErr = nil
	o.queue.Append(batch.Questions)
}

// finalizeIfDone runs the session completion aggregator. When no words
// remain active or untested, the session is marked complete exactly once,
// the final counts are recomputed from the ledger, and the completion report
// is delivered best-effort: a report failure is logged and recorded but the
// visible completed state is never rolled back.
func (o *Orchestrator) finalizeIfDone(ctx context.Context) bool {
	if o.session.Completed || !o.wave.Done(o.words) {
		return false
	}

	s := o.session
	s.MasteredCount = o.words.Count(ledger.StatusMastered)
	s.SkippedCount = o.words.Count(ledger.StatusSkipped)
	s.Completed = true

	summary, err := o.client.Complete(ctx, scoring.CompletionRequest{
		SessionID:     s.SessionID,
		MasteredCount: s.MasteredCount,
		SkippedCount:  s.SkippedCount,
		TotalAnswered: s.TotalAnswered,
		BestCombo:     s.BestCombo,
	})
	if err != nil {
		s.ReportErr = err
		o.log.Error("completion report failed",
			zap.String("session_id", s.SessionID),
			zap.Error(err))
	} else {
		s.CompletionResult = summary
	}

	o.appendSessionEvent(ctx, "complete", s.TotalAnswered)
	return true
}

func (o *Orchestrator) logTransitions(ctx context.Context, transitions []*ledger.StateTransition) {
	if o.events == nil || len(transitions) == 0 {
		return
	}
	for _, t := range transitions {
		w := o.words.Get(t.MasteryID)
		if w == nil {
			continue
		}
		err := o.events.AppendWordEvent(ctx, store.WordEventData{
			SessionID:     o.session.SessionID,
			WordMasteryID: t.MasteryID,
			WordText:      w.Text,
			FromStatus:    string(t.From),
			ToStatus:      string(t.To),
			Trigger:       t.Trigger,
		})
		if err != nil {
			o.log.Warn("append word event failed", zap.Error(err))
		}
	}
}

func (o *Orchestrator) appendAnswerEvent(ctx context.Context, q *scoring.Question, w *ledger.Word, answer string, elapsed time.Duration, verdict scoring.AnswerVerdict) {
	if o.events == nil {
		return
	}
	err := o.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     o.session.SessionID,
		WordMasteryID: q.WordMasteryID,
		WordText:      w.Text,
		Stage:         q.Stage,
		QuestionType:  q.QuestionType,
		StudentAnswer: answer,
		CorrectAnswer: verdict.CorrectAnswer,
		Correct:       verdict.IsCorrect,
		Almost:        verdict.AlmostCorrect,
		TimeMs:        int(elapsed.Milliseconds()),
	})
	if err != nil {
		o.log.Warn("append answer event failed", zap.Error(err))
	}
}

func (o *Orchestrator) appendSessionEvent(ctx context.Context, action string, totalAnswered int) {
	if o.events == nil {
		return
	}
	s := o.session
	err := o.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      s.SessionID,
		TestCode:       s.TestCode,
		Action:         action,
		TotalWords:     s.TotalWords,
		TotalAnswered:  totalAnswered,
		CorrectAnswers: s.CorrectCount,
		MasteredCount:  s.MasteredCount,
		SkippedCount:   s.SkippedCount,
		BestCombo:      s.BestCombo,
	})
	if err != nil {
		o.log.Warn("append session event failed", zap.Error(err))
	}
}
