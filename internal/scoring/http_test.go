package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	return client, srv
}

func validStartBody() map[string]any {
	return map[string]any{
		"session_id":   "s1",
		"total_words":  1,
		"max_fails":    3,
		"access_token": "tok-1",
		"words": []any{
			map[string]any{"word_mastery_id": 1, "word_id": 100, "text": "dog", "translation": "perro"},
		},
		"initial_questions": []any{
			map[string]any{"word_mastery_id": 1, "stage": 1, "question_type": "choice", "prompt": "p", "correct_answer": "perro"},
		},
	}
}

func TestStartByCode(t *testing.T) {
	var gotPath string
	var gotReq startRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(validStartBody())
	}))

	result, err := client.StartByCode(context.Background(), "ABC123", true)
	if err != nil {
		t.Fatalf("StartByCode: %v", err)
	}

	if gotPath != "/api/stage-test/start" {
		t.Errorf("path = %q", gotPath)
	}
	if gotReq.TestCode != "ABC123" || !gotReq.AllowRestart {
		t.Errorf("request = %+v", gotReq)
	}
	if result.SessionID != "s1" || len(result.Words) != 1 || len(result.InitialQuestions) != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestStartByCodeStatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusNotFound, ErrBadCode},
		{http.StatusConflict, ErrAlreadyCompleted},
	}

	for _, tt := range tests {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		_, err := client.StartByCode(context.Background(), "X", false)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.wantErr)
		}
	}
}

func TestStartByCodeServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.StartByCode(context.Background(), "X", false)
	var unavailable *ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want *ErrServerUnavailable", err)
	}
	if unavailable.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d", unavailable.Status)
	}
}

func TestStartByCodeRejectsMalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"session_id": "s1"}`))
	}))

	_, err := client.StartByCode(context.Background(), "X", false)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, want *ErrInvalidResponse", err)
	}
}

func TestAccessTokenForwarded(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stage-test/start":
			_ = json.NewEncoder(w).Encode(validStartBody())
		case "/api/stage-test/questions":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]any{"questions": []any{}})
		}
	}))

	if _, err := client.StartByCode(context.Background(), "X", false); err != nil {
		t.Fatalf("StartByCode: %v", err)
	}
	if _, err := client.FetchQuestions(context.Background(), FetchRequest{SessionID: "s1"}); err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}

	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want bearer token from bootstrap", gotAuth)
	}
}

func TestSubmitAnswerEnvelope(t *testing.T) {
	var got map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"is_correct": true, "correct_answer": "perro", "new_stage": 2,
		})
	}))

	verdict, err := client.SubmitAnswer(context.Background(), AnswerRequest{
		SessionID:      "s1",
		WordMasteryID:  7,
		SelectedAnswer: "perro",
		Stage:          1,
		QuestionType:   "choice",
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if got["session_id"] != "s1" {
		t.Errorf("session_id = %v, want s1 in envelope", got["session_id"])
	}
	if got["word_mastery_id"] != float64(7) {
		t.Errorf("word_mastery_id = %v", got["word_mastery_id"])
	}
	if !verdict.IsCorrect || verdict.NewStage != 2 {
		t.Errorf("verdict = %+v", verdict)
	}
}

func TestCompleteEnvelope(t *testing.T) {
	var got map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accuracy": 0.75, "total_answered": 8, "correct_count": 6,
		})
	}))

	summary, err := client.Complete(context.Background(), CompletionRequest{
		SessionID:     "s1",
		MasteredCount: 3,
		SkippedCount:  1,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if got["session_id"] != "s1" || got["mastered_count"] != float64(3) {
		t.Errorf("envelope = %+v", got)
	}
	if summary.Accuracy != 0.75 || summary.CorrectCount != 6 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewHTTPClient(Config{BaseURL: url, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}

	_, err = client.FetchQuestions(context.Background(), FetchRequest{})
	var unavailable *ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want *ErrServerUnavailable", err)
	}
}

func TestNewHTTPClientValidatesConfig(t *testing.T) {
	if _, err := NewHTTPClient(Config{}); err == nil {
		t.Error("want error for empty config")
	}
}
