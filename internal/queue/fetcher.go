package queue

import (
	"context"
	"sync"

	"github.com/abhisek/wordwave/internal/scoring"
)

// Fetcher runs question batch fetches asynchronously, one at a time.
// A fetch already in flight is never duplicated: Request refuses to start a
// second one until the first result has been consumed. The orchestrator
// applies resolved batches through its own synchronous mutation path, so the
// queue itself is never touched from the fetch goroutine.
type Fetcher struct {
	client scoring.Client

	mu       sync.Mutex
	inflight bool
	ready    bool
	result   *scoring.QuestionBatch
	err      error
	done     chan struct{}
}

// NewFetcher creates a Fetcher backed by the given scoring client.
func NewFetcher(client scoring.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Request starts an async batch fetch if none is in flight or pending
// consumption. Returns whether a fetch was started.
func (f *Fetcher) Request(ctx context.Context, req scoring.FetchRequest) bool {
	f.mu.Lock()
	if f.inflight || f.ready {
		f.mu.Unlock()
		return false
	}
	f.inflight = true
	f.done = make(chan struct{})
	done := f.done
	f.mu.Unlock()

	go func() {
		batch, err := f.client.FetchQuestions(ctx, req)
		f.mu.Lock()
		f.result = batch
		f.err = err
		f.inflight = false
		f.ready = true
		f.mu.Unlock()
		close(done)
	}()
	return true
}

// Consume hands over a resolved fetch result exactly once.
// Returns (nil, nil, false) while no result is ready.
func (f *Fetcher) Consume() (*scoring.QuestionBatch, error, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ready {
		return nil, nil, false
	}
	batch, err := f.result, f.err
	f.result = nil
	f.err = nil
	f.ready = false
	return batch, err, true
}

// InFlight reports whether a fetch is currently running.
func (f *Fetcher) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inflight
}

// Done returns a channel closed when the current fetch resolves, or nil when
// no fetch is in flight or pending consumption. The orchestrator blocks on it
// only when the queue is starved.
func (f *Fetcher) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.inflight && !f.ready {
		return nil
	}
	return f.done
}
