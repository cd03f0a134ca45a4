package wave

import (
	"fmt"

	"github.com/abhisek/wordwave/internal/ledger"
)

const (
	// DefaultInitialBatch is the target size of the active pool.
	DefaultInitialBatch = 8

	// DefaultRefillThreshold is the active count below which the pool is
	// refilled from the untested reserve.
	DefaultRefillThreshold = 3
)

// Controller decides which untested words become active. The active pool
// never grows past InitialBatch; it drains into terminal states and is
// refilled FIFO from the untested reserve until that reserve is exhausted.
type Controller struct {
	InitialBatch    int
	RefillThreshold int
}

// NewController creates a Controller with default sizing.
func NewController() Controller {
	return Controller{
		InitialBatch:    DefaultInitialBatch,
		RefillThreshold: DefaultRefillThreshold,
	}
}

// Validate checks the wave shape for usability.
func (c Controller) Validate() error {
	if c.InitialBatch < 1 {
		return fmt.Errorf("initial batch must be at least 1, got %d", c.InitialBatch)
	}
	if c.RefillThreshold < 0 {
		return fmt.Errorf("refill threshold must be non-negative, got %d", c.RefillThreshold)
	}
	if c.RefillThreshold >= c.InitialBatch {
		return fmt.Errorf("refill threshold %d must be below initial batch %d", c.RefillThreshold, c.InitialBatch)
	}
	return nil
}

// AdmitInitial activates the first wave: up to InitialBatch untested words
// in ledger order. Returns the transitions that occurred.
func (c Controller) AdmitInitial(l *ledger.Ledger) []*ledger.StateTransition {
	return c.admitUpTo(l, c.InitialBatch)
}

// Refill tops the active pool back up to InitialBatch, but only once it has
// drained to RefillThreshold or fewer words. Called after every ledger
// mutation. Returns the transitions for newly admitted words (nil when no
// refill ran).
func (c Controller) Refill(l *ledger.Ledger) []*ledger.StateTransition {
	active := l.Count(ledger.StatusActive)
	if active > c.RefillThreshold {
		return nil
	}
	return c.admitUpTo(l, c.InitialBatch-active)
}

// Done reports the termination condition: nothing active, nothing untested.
func (c Controller) Done(l *ledger.Ledger) bool {
	return l.Exhausted()
}

func (c Controller) admitUpTo(l *ledger.Ledger, n int) []*ledger.StateTransition {
	var transitions []*ledger.StateTransition
	for i := 0; i < n; i++ {
		w := l.NextUntested()
		if w == nil {
			break
		}
		if t := l.Activate(w.MasteryID); t != nil {
			transitions = append(transitions, t)
		}
	}
	return transitions
}
