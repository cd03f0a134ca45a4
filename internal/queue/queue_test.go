package queue

import (
	"testing"

	"github.com/abhisek/wordwave/internal/scoring"
)

func questions(ids ...int64) []scoring.Question {
	out := make([]scoring.Question, len(ids))
	for i, id := range ids {
		out[i] = scoring.Question{WordMasteryID: id, Prompt: "p"}
	}
	return out
}

func TestQueueCursorWalk(t *testing.T) {
	q := New(questions(1, 2, 3))

	if got := q.Remaining(); got != 3 {
		t.Errorf("Remaining = %d, want 3", got)
	}

	for i, want := range []int64{1, 2, 3} {
		cur := q.Current()
		if cur == nil || cur.WordMasteryID != want {
			t.Fatalf("step %d: Current = %+v, want mastery ID %d", i, cur, want)
		}
		q.Advance()
	}

	if !q.Starved() {
		t.Error("want starved after consuming all questions")
	}
	if q.Current() != nil {
		t.Error("Current on starved queue should be nil")
	}
	if got := q.Served(); got != 3 {
		t.Errorf("Served = %d, want 3", got)
	}
}

func TestQueueAdvanceWhenStarvedIsNoop(t *testing.T) {
	q := New(nil)
	q.Advance()
	q.Advance()

	if got := q.Served(); got != 0 {
		t.Errorf("Served = %d, want 0", got)
	}

	// A late append must land under the unmoved cursor.
	q.Append(questions(7))
	cur := q.Current()
	if cur == nil || cur.WordMasteryID != 7 {
		t.Errorf("Current = %+v, want mastery ID 7", cur)
	}
}

func TestQueueAppendPreservesOrder(t *testing.T) {
	q := New(questions(1, 2))
	q.Advance()
	q.Append(questions(3, 4))

	var got []int64
	for q.Current() != nil {
		got = append(got, q.Current().WordMasteryID)
		q.Advance()
	}

	want := []int64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("served %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("served %v, want %v", got, want)
			break
		}
	}
}

func TestQueueCopiesInitialBatch(t *testing.T) {
	initial := questions(1)
	q := New(initial)
	initial[0].WordMasteryID = 99

	if got := q.Current().WordMasteryID; got != 1 {
		t.Errorf("queue aliased the caller's slice: got %d", got)
	}
}
