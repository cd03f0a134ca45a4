package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/wordwave/internal/scoring"
)

func TestFetcherResolvesBatch(t *testing.T) {
	mock := &scoring.MockClient{
		Batches: []scoring.MockResult[scoring.QuestionBatch]{
			{Value: &scoring.QuestionBatch{Questions: questions(1, 2)}},
		},
	}
	f := NewFetcher(mock)

	if !f.Request(context.Background(), scoring.FetchRequest{SessionID: "s1"}) {
		t.Fatal("Request refused on an idle fetcher")
	}

	<-f.Done()

	batch, err, ok := f.Consume()
	if !ok {
		t.Fatal("Consume not ready after Done closed")
	}
	if err != nil {
		t.Fatalf("Consume error: %v", err)
	}
	if len(batch.Questions) != 2 {
		t.Errorf("batch has %d questions, want 2", len(batch.Questions))
	}

	// Exactly-once handover.
	if _, _, ok := f.Consume(); ok {
		t.Error("second Consume returned a result")
	}
}

func TestFetcherSingleInFlight(t *testing.T) {
	gate := make(chan struct{})
	mock := &scoring.MockClient{FetchGate: gate}
	f := NewFetcher(mock)

	if !f.Request(context.Background(), scoring.FetchRequest{}) {
		t.Fatal("first Request refused")
	}
	if f.Request(context.Background(), scoring.FetchRequest{}) {
		t.Error("second Request started while one was in flight")
	}
	if !f.InFlight() {
		t.Error("InFlight = false with a held fetch")
	}

	close(gate)
	<-f.Done()

	// Resolved but unconsumed still blocks a new request.
	if f.Request(context.Background(), scoring.FetchRequest{}) {
		t.Error("Request started with an unconsumed result pending")
	}

	if _, _, ok := f.Consume(); !ok {
		t.Fatal("Consume not ready")
	}
	if !f.Request(context.Background(), scoring.FetchRequest{}) {
		t.Error("Request refused after the result was consumed")
	}
	<-f.Done()

	if got := mock.FetchCount(); got != 2 {
		t.Errorf("fetch calls = %d, want 2", got)
	}
}

func TestFetcherPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := &scoring.MockClient{
		Batches: []scoring.MockResult[scoring.QuestionBatch]{{Err: wantErr}},
	}
	f := NewFetcher(mock)

	f.Request(context.Background(), scoring.FetchRequest{})
	<-f.Done()

	_, err, ok := f.Consume()
	if !ok {
		t.Fatal("Consume not ready")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("Consume error = %v, want %v", err, wantErr)
	}

	// An error resolution frees the slot for a retry.
	if !f.Request(context.Background(), scoring.FetchRequest{}) {
		t.Error("Request refused after consuming an error")
	}
	<-f.Done()
}

func TestFetcherDoneNilWhenIdle(t *testing.T) {
	f := NewFetcher(&scoring.MockClient{})
	if f.Done() != nil {
		t.Error("Done should be nil on an idle fetcher")
	}
}

func TestFetcherConsumeBeforeResolve(t *testing.T) {
	gate := make(chan struct{})
	mock := &scoring.MockClient{FetchGate: gate}
	f := NewFetcher(mock)

	f.Request(context.Background(), scoring.FetchRequest{})
	if _, _, ok := f.Consume(); ok {
		t.Error("Consume returned a result while the fetch was held")
	}

	close(gate)
	select {
	case <-f.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never resolved")
	}
}
