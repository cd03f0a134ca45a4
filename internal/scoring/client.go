package scoring

import "context"

// Client is the core abstraction for the scoring collaborator.
// It owns session bootstrap, question production, answer grading, and
// completion reporting; the engine never produces or grades content itself.
type Client interface {
	// StartByCode bootstraps a session from a test code. Returns the full
	// word set for the session plus the first ready question batch.
	StartByCode(ctx context.Context, code string, allowRestart bool) (*StartResult, error)

	// FetchQuestions requests a question batch for a set of active words.
	// Per-word error counts let the server bias question difficulty.
	FetchQuestions(ctx context.Context, req FetchRequest) (*QuestionBatch, error)

	// SubmitAnswer grades a single answer and returns the verdict.
	SubmitAnswer(ctx context.Context, req AnswerRequest) (*AnswerVerdict, error)

	// Complete reports session finalization and returns the server's summary.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionSummary, error)
}

// Word is a vocabulary item as delivered by the collaborator at bootstrap.
type Word struct {
	// WordMasteryID is the session-scoped identity for this word.
	WordMasteryID int64 `json:"word_mastery_id"`

	// WordID references the underlying vocabulary entry.
	WordID int64 `json:"word_id"`

	Text        string `json:"text"`
	Translation string `json:"translation"`

	// Difficulty is an optional score used only for question selection
	// tie-breaking on the server side.
	Difficulty float64 `json:"difficulty,omitempty"`
}

// Question is a single-use prompt for a word at a particular stage.
// Questions are produced in batches, consumed exactly once, then discarded.
type Question struct {
	WordMasteryID int64  `json:"word_mastery_id"`
	Stage         int    `json:"stage"`
	QuestionType  string `json:"question_type"`
	Prompt        string `json:"prompt"`

	// Choices is the option set for choice-type questions; empty for
	// typed-input questions.
	Choices []string `json:"choices,omitempty"`

	CorrectAnswer string `json:"correct_answer"`

	// TimerSeconds is the per-question time budget. Enforcing it is a
	// UI-layer concern (auto-submit-as-incorrect on expiry).
	TimerSeconds int `json:"timer_seconds"`
}

// StartResult is the one-time bootstrap payload.
type StartResult struct {
	SessionID        string     `json:"session_id"`
	AssignmentID     int64      `json:"assignment_id"`
	Words            []Word     `json:"words"`
	InitialQuestions []Question `json:"initial_questions"`
	TotalWords       int        `json:"total_words"`
	MaxFails         int        `json:"max_fails"`
	AccessToken      string     `json:"access_token,omitempty"`
	StudentName      string     `json:"student_name,omitempty"`
}

// FetchRequest asks for a question batch covering the given active words.
type FetchRequest struct {
	SessionID      string  `json:"session_id"`
	WordMasteryIDs []int64 `json:"word_mastery_ids"`

	// ErrorCounts carries each word's fail count, aligned by index with
	// WordMasteryIDs. Optional.
	ErrorCounts []int `json:"error_counts,omitempty"`
}

// QuestionBatch is the fetch response.
type QuestionBatch struct {
	Questions []Question `json:"questions"`
}

// AnswerRequest submits one answer for grading.
type AnswerRequest struct {
	SessionID        string  `json:"-"`
	WordMasteryID    int64   `json:"word_mastery_id"`
	SelectedAnswer   string  `json:"selected_answer"`
	TimeTakenSeconds float64 `json:"time_taken_seconds"`
	Stage            int     `json:"stage"`
	QuestionType     string  `json:"question_type"`
}

// AnswerVerdict is the server's per-answer grading result.
type AnswerVerdict struct {
	IsCorrect     bool   `json:"is_correct"`
	AlmostCorrect bool   `json:"almost_correct"`
	CorrectAnswer string `json:"correct_answer"`
	NewStage      int    `json:"new_stage"`
	WordMastered  bool   `json:"word_mastered"`
}

// CompletionRequest reports final session statistics.
type CompletionRequest struct {
	SessionID     string `json:"-"`
	MasteredCount int    `json:"mastered_count"`
	SkippedCount  int    `json:"skipped_count"`
	TotalAnswered int    `json:"total_answered"`
	BestCombo     int    `json:"best_combo"`
}

// CompletionSummary is the server's acknowledgement of completion.
type CompletionSummary struct {
	Accuracy      float64 `json:"accuracy"`
	TotalAnswered int     `json:"total_answered"`
	CorrectCount  int     `json:"correct_count"`
}
