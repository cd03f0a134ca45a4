package practiced

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhisek/wordwave/internal/scoring"
	"github.com/abhisek/wordwave/internal/stagetest"
	"github.com/abhisek/wordwave/internal/wave"
)

func animalList() WordList {
	return WordList{
		Code:  "ANIMALS",
		Title: "Animals",
		Entries: []Entry{
			{Text: "dog", Translation: "perro"},
			{Text: "cat", Translation: "gato"},
			{Text: "bird", Translation: "pájaro"},
		},
	}
}

func newPracticeClient(t *testing.T) *scoring.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(NewServer([]WordList{animalList()}, 1).Router())
	t.Cleanup(srv.Close)

	client, err := scoring.NewHTTPClient(scoring.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	return client
}

func TestStartUnknownCode(t *testing.T) {
	client := newPracticeClient(t)

	_, err := client.StartByCode(context.Background(), "NOPE", false)
	if !errors.Is(err, scoring.ErrBadCode) {
		t.Errorf("err = %v, want ErrBadCode", err)
	}
}

func TestStartDeliversWordsAndQuestions(t *testing.T) {
	client := newPracticeClient(t)

	result, err := client.StartByCode(context.Background(), "animals", false)
	if err != nil {
		t.Fatalf("StartByCode: %v", err)
	}

	if result.TotalWords != 3 || len(result.Words) != 3 {
		t.Errorf("got %d words, want 3", len(result.Words))
	}
	if result.MaxFails != DefaultMaxFails {
		t.Errorf("MaxFails = %d, want %d", result.MaxFails, DefaultMaxFails)
	}
	if len(result.InitialQuestions) != 3 {
		t.Errorf("got %d initial questions, want one per word", len(result.InitialQuestions))
	}
	for _, q := range result.InitialQuestions {
		if q.Stage != 1 || q.QuestionType != "choice" {
			t.Errorf("initial question = %+v, want stage-1 choice", q)
		}
		if len(q.Choices) == 0 {
			t.Errorf("choice question without choices: %+v", q)
		}
	}
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	srv := httptest.NewServer(NewServer([]WordList{animalList()}, 1).Router())
	defer srv.Close()

	// A fresh client that never bootstrapped has no bearer token.
	client, err := scoring.NewHTTPClient(scoring.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}

	_, err = client.FetchQuestions(context.Background(), scoring.FetchRequest{SessionID: "bogus"})
	var unavailable *scoring.ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want *ErrServerUnavailable", err)
	}
	if unavailable.Status != 401 {
		t.Errorf("Status = %d, want 401", unavailable.Status)
	}
}

func TestAnswerGradingAndStageAdvance(t *testing.T) {
	client := newPracticeClient(t)

	result, err := client.StartByCode(context.Background(), "ANIMALS", false)
	if err != nil {
		t.Fatalf("StartByCode: %v", err)
	}
	sessionID := result.SessionID

	// Correct answer advances the stage.
	verdict, err := client.SubmitAnswer(context.Background(), scoring.AnswerRequest{
		SessionID:      sessionID,
		WordMasteryID:  1,
		SelectedAnswer: "perro",
		Stage:          1,
		QuestionType:   "choice",
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !verdict.IsCorrect || verdict.NewStage != 2 || verdict.WordMastered {
		t.Errorf("verdict = %+v, want correct at new stage 2", verdict)
	}

	// Near miss moves nothing.
	verdict, err = client.SubmitAnswer(context.Background(), scoring.AnswerRequest{
		SessionID:      sessionID,
		WordMasteryID:  1,
		SelectedAnswer: "pero",
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if verdict.IsCorrect || !verdict.AlmostCorrect || verdict.NewStage != 2 {
		t.Errorf("verdict = %+v, want almost at stage 2", verdict)
	}

	// Incorrect answer reveals the expected translation.
	verdict, err = client.SubmitAnswer(context.Background(), scoring.AnswerRequest{
		SessionID:      sessionID,
		WordMasteryID:  1,
		SelectedAnswer: "gato",
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if verdict.IsCorrect || verdict.AlmostCorrect || verdict.CorrectAnswer != "perro" {
		t.Errorf("verdict = %+v, want incorrect with answer revealed", verdict)
	}
}

func TestWordMasteredAtMaxStage(t *testing.T) {
	client := newPracticeClient(t)

	result, err := client.StartByCode(context.Background(), "ANIMALS", false)
	if err != nil {
		t.Fatalf("StartByCode: %v", err)
	}

	var verdict *scoring.AnswerVerdict
	for i := 0; i < maxStage; i++ {
		verdict, err = client.SubmitAnswer(context.Background(), scoring.AnswerRequest{
			SessionID:      result.SessionID,
			WordMasteryID:  1,
			SelectedAnswer: "perro",
		})
		if err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i+1, err)
		}
	}

	if !verdict.WordMastered {
		t.Errorf("verdict after %d correct answers = %+v, want mastered", maxStage, verdict)
	}

	// A mastered word is excluded from further question batches.
	batch, err := client.FetchQuestions(context.Background(), scoring.FetchRequest{
		SessionID:      result.SessionID,
		WordMasteryIDs: []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}
	if len(batch.Questions) != 1 || batch.Questions[0].WordMasteryID != 2 {
		t.Errorf("batch = %+v, want only word 2", batch.Questions)
	}
}

func TestQuestionModalityByStageAndFails(t *testing.T) {
	srv := NewServer([]WordList{animalList()}, 1)

	sess := &serverSession{words: map[int64]*serverWord{
		1: {masteryID: 1, text: "dog", translation: "perro", stage: 3},
		2: {masteryID: 2, text: "cat", translation: "gato", stage: 3},
	}}

	// Stage 3 without repeated failures: typed production.
	q := srv.buildQuestionBiased(sess, sess.words[1], 0)
	if q.QuestionType != "typed" || len(q.Choices) != 0 {
		t.Errorf("question = %+v, want typed without choices", q)
	}

	// Two failures earn the recognition format back.
	q = srv.buildQuestionBiased(sess, sess.words[1], 2)
	if q.QuestionType != "choice" {
		t.Errorf("question = %+v, want choice for a struggling word", q)
	}

	// The option set always contains the correct translation.
	found := false
	for _, c := range q.Choices {
		if c == "perro" {
			found = true
		}
	}
	if !found {
		t.Errorf("choices %v missing the correct answer", q.Choices)
	}
}

func TestCompleteReportsSummary(t *testing.T) {
	client := newPracticeClient(t)

	result, err := client.StartByCode(context.Background(), "ANIMALS", false)
	if err != nil {
		t.Fatalf("StartByCode: %v", err)
	}

	for _, answer := range []string{"perro", "wrong"} {
		if _, err := client.SubmitAnswer(context.Background(), scoring.AnswerRequest{
			SessionID:      result.SessionID,
			WordMasteryID:  1,
			SelectedAnswer: answer,
		}); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	summary, err := client.Complete(context.Background(), scoring.CompletionRequest{
		SessionID: result.SessionID,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if summary.TotalAnswered != 2 || summary.CorrectCount != 1 || summary.Accuracy != 0.5 {
		t.Errorf("summary = %+v", summary)
	}
}

// TestFullSessionThroughEngine drives the whole progression engine against
// the practice server: every answer correct, every word mastered.
func TestFullSessionThroughEngine(t *testing.T) {
	client := newPracticeClient(t)

	orch := stagetest.New(client, stagetest.Options{
		Wave: wave.Controller{InitialBatch: 2, RefillThreshold: 1},
	})
	ctx := context.Background()
	if err := orch.Start(ctx, "ANIMALS", false); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var completed bool
	for i := 0; i < 100 && !completed; i++ {
		q, err := orch.Current()
		switch {
		case err == nil:
		case errors.Is(err, stagetest.ErrCompleted):
			completed = true
			continue
		case errors.Is(err, stagetest.ErrLoading):
			if err := orch.WaitForQuestions(ctx); err != nil {
				t.Fatalf("WaitForQuestions: %v", err)
			}
			continue
		case errors.Is(err, stagetest.ErrNoQuestion):
			if !orch.RequestQuestions(ctx) {
				t.Fatal("queue dry and RequestQuestions refused")
			}
			if err := orch.WaitForQuestions(ctx); err != nil {
				t.Fatalf("WaitForQuestions: %v", err)
			}
			continue
		default:
			t.Fatalf("Current: %v", err)
		}

		result, err := orch.Submit(ctx, q.CorrectAnswer, time.Second)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		completed = result.Completed
	}

	if !completed {
		t.Fatal("session never completed")
	}

	s := orch.Session()
	if s.MasteredCount != 3 || s.SkippedCount != 0 {
		t.Errorf("mastered/skipped = %d/%d, want 3/0", s.MasteredCount, s.SkippedCount)
	}
	if s.CorrectCount != s.TotalAnswered {
		t.Errorf("correct %d of %d, want all correct", s.CorrectCount, s.TotalAnswered)
	}
	if s.ReportErr != nil {
		t.Errorf("ReportErr = %v", s.ReportErr)
	}
	if s.CompletionResult == nil {
		t.Error("no completion summary from the server")
	}
}
