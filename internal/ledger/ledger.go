package ledger

import "fmt"

// Ledger is the authoritative in-memory table of every word in a session.
// Insertion order is preserved; the wave controller draws untested words
// FIFO by this order.
type Ledger struct {
	words []*Word
	byID  map[int64]*Word
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{byID: make(map[int64]*Word)}
}

// Add inserts a word in untested status. Duplicate mastery IDs are rejected.
func (l *Ledger) Add(w *Word) error {
	if _, exists := l.byID[w.MasteryID]; exists {
		return fmt.Errorf("duplicate word mastery id %d", w.MasteryID)
	}
	if w.Status == "" {
		w.Status = StatusUntested
	}
	l.words = append(l.words, w)
	l.byID[w.MasteryID] = w
	return nil
}

// Get returns the word with the given mastery ID, or nil.
func (l *Ledger) Get(masteryID int64) *Word {
	return l.byID[masteryID]
}

// Len returns the total number of words in the session.
func (l *Ledger) Len() int {
	return len(l.words)
}

// Activate transitions an untested word to active at stage 1.
// Returns the transition, or nil if the word is not untested.
func (l *Ledger) Activate(masteryID int64) *StateTransition {
	w := l.byID[masteryID]
	if w == nil || w.Status != StatusUntested {
		return nil
	}
	w.Status = StatusActive
	w.Stage = 1
	return &StateTransition{
		MasteryID: w.MasteryID,
		From:      StatusUntested,
		To:        StatusActive,
		Trigger:   "admitted",
	}
}

// NextUntested returns the first untested word in ledger order, or nil.
func (l *Ledger) NextUntested() *Word {
	for _, w := range l.words {
		if w.Status == StatusUntested {
			return w
		}
	}
	return nil
}

// ActiveWords returns the active words in ledger order.
func (l *Ledger) ActiveWords() []*Word {
	var out []*Word
	for _, w := range l.words {
		if w.Status == StatusActive {
			out = append(out, w)
		}
	}
	return out
}

// Count returns the number of words with the given status.
func (l *Ledger) Count(status Status) int {
	n := 0
	for _, w := range l.words {
		if w.Status == status {
			n++
		}
	}
	return n
}

// Exhausted reports whether no words remain active or untested — the sole
// trigger for session completion.
func (l *Ledger) Exhausted() bool {
	return l.Count(StatusActive) == 0 && l.Count(StatusUntested) == 0
}

// Words returns all words in ledger order. The slice is shared; callers
// must not reorder it.
func (l *Ledger) Words() []*Word {
	return l.words
}
