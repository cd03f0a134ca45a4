package scoring

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// startSchema validates the bootstrap payload. The engine builds its entire
// ledger from this response, so malformed server output is rejected here
// rather than surfacing as nil-map panics mid-session.
var startSchema = payloadSchema{
	Name: "start-result",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"session_id", "words", "initial_questions", "total_words", "max_fails"},
		"properties": map[string]any{
			"session_id":    map[string]any{"type": "string", "minLength": 1},
			"assignment_id": map[string]any{"type": "integer"},
			"total_words":   map[string]any{"type": "integer", "minimum": 0},
			"max_fails":     map[string]any{"type": "integer", "minimum": 1},
			"access_token":  map[string]any{"type": "string"},
			"student_name":  map[string]any{"type": "string"},
			"words": map[string]any{
				"type":  "array",
				"items": wordSchema,
			},
			"initial_questions": map[string]any{
				"type":  "array",
				"items": questionSchema,
			},
		},
	},
}

// batchSchema validates question batch payloads.
var batchSchema = payloadSchema{
	Name: "question-batch",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionSchema,
			},
		},
	},
}

var wordSchema = map[string]any{
	"type":     "object",
	"required": []any{"word_mastery_id", "word_id", "text", "translation"},
	"properties": map[string]any{
		"word_mastery_id": map[string]any{"type": "integer"},
		"word_id":         map[string]any{"type": "integer"},
		"text":            map[string]any{"type": "string", "minLength": 1},
		"translation":     map[string]any{"type": "string", "minLength": 1},
		"difficulty":      map[string]any{"type": "number"},
	},
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"word_mastery_id", "stage", "question_type", "prompt", "correct_answer"},
	"properties": map[string]any{
		"word_mastery_id": map[string]any{"type": "integer"},
		"stage":           map[string]any{"type": "integer", "minimum": 1},
		"question_type":   map[string]any{"type": "string", "minLength": 1},
		"prompt":          map[string]any{"type": "string"},
		"choices":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"correct_answer":  map[string]any{"type": "string"},
		"timer_seconds":   map[string]any{"type": "integer", "minimum": 0},
	},
}

type payloadSchema struct {
	Name       string
	Definition map[string]any
}

// validatePayload validates raw JSON against the given payload schema.
// Returns *ErrInvalidResponse on failure.
func validatePayload(schema payloadSchema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema payloadSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
