package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClient talks to the scoring server over its JSON API.
// It is safe for use by a single orchestrator; the engine never issues
// concurrent calls except the question prefetch, which the queue fetcher
// already serializes.
type HTTPClient struct {
	baseURL string
	client  *http.Client

	// accessToken is captured from the bootstrap response and sent as a
	// bearer token on all subsequent calls.
	accessToken string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient from configuration.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring config: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type startRequest struct {
	TestCode     string `json:"test_code"`
	AllowRestart bool   `json:"allow_restart"`
}

// StartByCode bootstraps a session from a test code.
func (c *HTTPClient) StartByCode(ctx context.Context, code string, allowRestart bool) (*StartResult, error) {
	raw, status, err := c.post(ctx, "/api/stage-test/start", startRequest{
		TestCode:     code,
		AllowRestart: allowRestart,
	})
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrBadCode
	}
	if status == http.StatusConflict {
		return nil, ErrAlreadyCompleted
	}
	if status != http.StatusOK {
		return nil, &ErrServerUnavailable{Status: status}
	}

	if err := validatePayload(startSchema, raw); err != nil {
		return nil, err
	}

	var result StartResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	c.accessToken = result.AccessToken
	return &result, nil
}

// FetchQuestions requests a question batch for the given active words.
func (c *HTTPClient) FetchQuestions(ctx context.Context, req FetchRequest) (*QuestionBatch, error) {
	raw, status, err := c.post(ctx, "/api/stage-test/questions", req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &ErrServerUnavailable{Status: status}
	}

	if err := validatePayload(batchSchema, raw); err != nil {
		return nil, err
	}

	var batch QuestionBatch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	return &batch, nil
}

type answerEnvelope struct {
	SessionID string `json:"session_id"`
	AnswerRequest
}

// SubmitAnswer grades a single answer.
func (c *HTTPClient) SubmitAnswer(ctx context.Context, req AnswerRequest) (*AnswerVerdict, error) {
	raw, status, err := c.post(ctx, "/api/stage-test/answer", answerEnvelope{
		SessionID:     req.SessionID,
		AnswerRequest: req,
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &ErrServerUnavailable{Status: status}
	}

	var verdict AnswerVerdict
	if err := json.Unmarshal(raw, &verdict); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	return &verdict, nil
}

type completionEnvelope struct {
	SessionID string `json:"session_id"`
	CompletionRequest
}

// Complete reports session finalization.
func (c *HTTPClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionSummary, error) {
	raw, status, err := c.post(ctx, "/api/stage-test/complete", completionEnvelope{
		SessionID:         req.SessionID,
		CompletionRequest: req,
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &ErrServerUnavailable{Status: status}
	}

	var summary CompletionSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	return &summary, nil
}

// post sends a JSON POST and returns the raw response body and status.
// Transport-level failures are wrapped as ErrServerUnavailable.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (json.RawMessage, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, &ErrServerUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &ErrServerUnavailable{Status: resp.StatusCode, Err: err}
	}

	return raw, resp.StatusCode, nil
}
