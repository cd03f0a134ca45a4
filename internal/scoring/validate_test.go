package scoring

import (
	"errors"
	"testing"
)

func TestValidateStartPayload(t *testing.T) {
	valid := `{
		"session_id": "s1",
		"total_words": 2,
		"max_fails": 3,
		"words": [
			{"word_mastery_id": 1, "word_id": 100, "text": "dog", "translation": "perro"}
		],
		"initial_questions": [
			{"word_mastery_id": 1, "stage": 1, "question_type": "choice", "prompt": "p", "correct_answer": "perro"}
		]
	}`

	if err := validatePayload(startSchema, []byte(valid)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateStartPayloadRejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not JSON", `{{`},
		{"missing session_id", `{"total_words": 1, "max_fails": 3, "words": [], "initial_questions": []}`},
		{"empty session_id", `{"session_id": "", "total_words": 1, "max_fails": 3, "words": [], "initial_questions": []}`},
		{"zero max_fails", `{"session_id": "s1", "total_words": 1, "max_fails": 0, "words": [], "initial_questions": []}`},
		{"word missing translation", `{
			"session_id": "s1", "total_words": 1, "max_fails": 3,
			"words": [{"word_mastery_id": 1, "word_id": 100, "text": "dog"}],
			"initial_questions": []
		}`},
		{"question at stage zero", `{
			"session_id": "s1", "total_words": 1, "max_fails": 3,
			"words": [],
			"initial_questions": [{"word_mastery_id": 1, "stage": 0, "question_type": "choice", "prompt": "p", "correct_answer": "x"}]
		}`},
	}

	for _, tt := range tests {
		err := validatePayload(startSchema, []byte(tt.payload))
		if err == nil {
			t.Errorf("%s: payload accepted, want rejection", tt.name)
			continue
		}
		var invalid *ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Errorf("%s: error type %T, want *ErrInvalidResponse", tt.name, err)
		}
	}
}

func TestValidateBatchPayload(t *testing.T) {
	valid := `{"questions": [{"word_mastery_id": 1, "stage": 2, "question_type": "typed", "prompt": "p", "correct_answer": "x"}]}`
	if err := validatePayload(batchSchema, []byte(valid)); err != nil {
		t.Errorf("valid batch rejected: %v", err)
	}

	empty := `{"questions": []}`
	if err := validatePayload(batchSchema, []byte(empty)); err != nil {
		t.Errorf("empty batch rejected: %v", err)
	}

	if err := validatePayload(batchSchema, []byte(`{}`)); err == nil {
		t.Error("batch without questions accepted")
	}
}

func TestSchemaCompilationIsCached(t *testing.T) {
	payload := []byte(`{"questions": []}`)
	if err := validatePayload(batchSchema, payload); err != nil {
		t.Fatalf("first validation: %v", err)
	}

	if _, ok := schemaCache.Load(batchSchema.Name); !ok {
		t.Error("compiled schema not cached")
	}

	if err := validatePayload(batchSchema, payload); err != nil {
		t.Errorf("second validation: %v", err)
	}
}
