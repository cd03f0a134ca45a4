package queue

import "github.com/abhisek/wordwave/internal/scoring"

// DefaultFetchThreshold is the remaining-question count below which a new
// batch fetch is triggered.
const DefaultFetchThreshold = 3

// Queue holds the ordered, append-only list of ready-to-ask questions and a
// cursor pointing at the next question to serve. Advancing the cursor is the
// only form of dequeue; a fetch never moves it.
type Queue struct {
	items  []scoring.Question
	cursor int
}

// New creates a queue seeded with an initial batch.
func New(initial []scoring.Question) *Queue {
	return &Queue{items: append([]scoring.Question(nil), initial...)}
}

// Current returns the question under the cursor, or nil if the queue is
// starved.
func (q *Queue) Current() *scoring.Question {
	if q.cursor >= len(q.items) {
		return nil
	}
	return &q.items[q.cursor]
}

// Advance moves the cursor past the current question. Advancing a starved
// queue is a no-op.
func (q *Queue) Advance() {
	if q.cursor < len(q.items) {
		q.cursor++
	}
}

// Append adds a fetched batch to the tail in arrival order.
func (q *Queue) Append(batch []scoring.Question) {
	q.items = append(q.items, batch...)
}

// Remaining returns the number of questions at or past the cursor.
func (q *Queue) Remaining() int {
	return len(q.items) - q.cursor
}

// Starved reports whether the cursor has reached the end of the queue.
func (q *Queue) Starved() bool {
	return q.Remaining() == 0
}

// Served returns the number of questions consumed so far.
func (q *Queue) Served() int {
	return q.cursor
}
