package scoring

import (
	"context"
	"sync"
)

// MockClient is a deterministic Client for testing.
// Each method returns its canned responses in FIFO order and records calls.
type MockClient struct {
	mu sync.Mutex

	StartResults []MockResult[StartResult]
	Batches      []MockResult[QuestionBatch]
	Verdicts     []MockResult[AnswerVerdict]
	Summaries    []MockResult[CompletionSummary]

	StartCalls    []string
	FetchCalls    []FetchRequest
	AnswerCalls   []AnswerRequest
	CompleteCalls []CompletionRequest

	// FetchGate, when non-nil, is received from before a FetchQuestions
	// call returns. Tests use it to hold a fetch in flight.
	FetchGate chan struct{}
}

// MockResult is a canned response or error.
type MockResult[T any] struct {
	Value *T
	Err   error
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) StartByCode(_ context.Context, code string, _ bool) (*StartResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartCalls = append(m.StartCalls, code)
	if len(m.StartResults) == 0 {
		return nil, ErrBadCode
	}
	r := m.StartResults[0]
	m.StartResults = m.StartResults[1:]
	return r.Value, r.Err
}

func (m *MockClient) FetchQuestions(_ context.Context, req FetchRequest) (*QuestionBatch, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, req)
	gate := m.FetchGate
	var r MockResult[QuestionBatch]
	if len(m.Batches) > 0 {
		r = m.Batches[0]
		m.Batches = m.Batches[1:]
	} else {
		r = MockResult[QuestionBatch]{Value: &QuestionBatch{}}
	}
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return r.Value, r.Err
}

func (m *MockClient) SubmitAnswer(_ context.Context, req AnswerRequest) (*AnswerVerdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswerCalls = append(m.AnswerCalls, req)
	if len(m.Verdicts) == 0 {
		return nil, &ErrServerUnavailable{}
	}
	r := m.Verdicts[0]
	m.Verdicts = m.Verdicts[1:]
	return r.Value, r.Err
}

func (m *MockClient) Complete(_ context.Context, req CompletionRequest) (*CompletionSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompleteCalls = append(m.CompleteCalls, req)
	if len(m.Summaries) == 0 {
		return nil, &ErrServerUnavailable{}
	}
	r := m.Summaries[0]
	m.Summaries = m.Summaries[1:]
	return r.Value, r.Err
}

// FetchCount returns the number of FetchQuestions calls made.
func (m *MockClient) FetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchCalls)
}

// CompleteCount returns the number of Complete calls made.
func (m *MockClient) CompleteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CompleteCalls)
}
