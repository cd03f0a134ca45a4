package wave

import (
	"testing"

	"github.com/abhisek/wordwave/internal/ledger"
)

func buildLedger(t *testing.T, n int) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	for i := 1; i <= n; i++ {
		if err := l.Add(&ledger.Word{MasteryID: int64(i), Text: "w"}); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	return l
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Controller
		wantErr bool
	}{
		{"defaults", NewController(), false},
		{"zero batch", Controller{InitialBatch: 0, RefillThreshold: 0}, true},
		{"negative threshold", Controller{InitialBatch: 8, RefillThreshold: -1}, true},
		{"threshold equals batch", Controller{InitialBatch: 3, RefillThreshold: 3}, true},
		{"minimal", Controller{InitialBatch: 1, RefillThreshold: 0}, false},
	}

	for _, tt := range tests {
		err := tt.c.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestAdmitInitialFillsBatch(t *testing.T) {
	c := Controller{InitialBatch: 8, RefillThreshold: 3}
	l := buildLedger(t, 20)

	transitions := c.AdmitInitial(l)

	if len(transitions) != 8 {
		t.Fatalf("admitted %d words, want 8", len(transitions))
	}
	// FIFO by ledger order.
	for i, tr := range transitions {
		if tr.MasteryID != int64(i+1) {
			t.Errorf("transition %d admitted mastery ID %d, want %d", i, tr.MasteryID, i+1)
		}
	}
	if got := l.Count(ledger.StatusActive); got != 8 {
		t.Errorf("active count = %d, want 8", got)
	}
	if got := l.Count(ledger.StatusUntested); got != 12 {
		t.Errorf("untested count = %d, want 12", got)
	}
}

func TestAdmitInitialShortSession(t *testing.T) {
	c := Controller{InitialBatch: 8, RefillThreshold: 3}
	l := buildLedger(t, 5)

	transitions := c.AdmitInitial(l)

	if len(transitions) != 5 {
		t.Errorf("admitted %d words, want all 5", len(transitions))
	}
	if got := l.Count(ledger.StatusUntested); got != 0 {
		t.Errorf("untested count = %d, want 0", got)
	}
}

func TestRefillTriggersAtThreshold(t *testing.T) {
	c := Controller{InitialBatch: 8, RefillThreshold: 3}
	l := buildLedger(t, 20)
	c.AdmitInitial(l)

	// Drain the pool one word at a time. No refill runs until the pool
	// has drained down to the threshold itself.
	for _, id := range []int64{1, 2, 3, 4, 5} {
		l.Get(id).Status = ledger.StatusMastered
		transitions := c.Refill(l)

		drained := 8 - int(id)
		if drained > 3 {
			if transitions != nil {
				t.Errorf("refill ran at %d active, want none above threshold", drained)
			}
			continue
		}
		if len(transitions) != 8-drained {
			t.Errorf("refill at %d active admitted %d words, want %d", drained, len(transitions), 8-drained)
		}
		if got := l.Count(ledger.StatusActive); got != 8 {
			t.Errorf("after refill: active = %d, want 8", got)
		}
	}
}

func TestRefillTopsUpToInitialBatch(t *testing.T) {
	c := Controller{InitialBatch: 8, RefillThreshold: 3}
	l := buildLedger(t, 20)
	c.AdmitInitial(l)

	for _, id := range []int64{1, 2, 3, 4, 5} {
		l.Get(id).Status = ledger.StatusSkipped
	}

	transitions := c.Refill(l)

	if len(transitions) != 5 {
		t.Errorf("admitted %d words, want 5", len(transitions))
	}
	if got := l.Count(ledger.StatusActive); got != 8 {
		t.Errorf("active = %d, want 8 (pool never exceeds initial batch)", got)
	}
}

func TestRefillWithEmptyReserve(t *testing.T) {
	c := Controller{InitialBatch: 8, RefillThreshold: 3}
	l := buildLedger(t, 8)
	c.AdmitInitial(l)

	for i := int64(1); i <= 6; i++ {
		l.Get(i).Status = ledger.StatusMastered
	}

	if transitions := c.Refill(l); len(transitions) != 0 {
		t.Errorf("admitted %d words from an empty reserve", len(transitions))
	}
	if got := l.Count(ledger.StatusActive); got != 2 {
		t.Errorf("active = %d, want 2", got)
	}
	if c.Done(l) {
		t.Error("Done with 2 active words")
	}
}

func TestDone(t *testing.T) {
	c := NewController()
	l := buildLedger(t, 2)
	c.AdmitInitial(l)

	l.Get(1).Status = ledger.StatusMastered
	if c.Done(l) {
		t.Error("Done with one active word")
	}

	l.Get(2).Status = ledger.StatusSkipped
	if !c.Done(l) {
		t.Error("all terminal, want Done")
	}
}
