package ledger

import "testing"

func newTestLedger(t *testing.T, n int) *Ledger {
	t.Helper()
	l := New()
	for i := 1; i <= n; i++ {
		err := l.Add(&Word{MasteryID: int64(i), WordID: int64(i * 100), Text: "w"})
		if err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	return l
}

func TestAddRejectsDuplicates(t *testing.T) {
	l := newTestLedger(t, 1)

	if err := l.Add(&Word{MasteryID: 1}); err == nil {
		t.Error("expected error on duplicate mastery ID")
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}

func TestAddDefaultsToUntested(t *testing.T) {
	l := newTestLedger(t, 1)

	if got := l.Get(1).Status; got != StatusUntested {
		t.Errorf("Status = %s, want untested", got)
	}
}

func TestActivate(t *testing.T) {
	l := newTestLedger(t, 2)

	tr := l.Activate(1)
	if tr == nil {
		t.Fatal("expected a transition")
	}
	if tr.From != StatusUntested || tr.To != StatusActive || tr.Trigger != "admitted" {
		t.Errorf("transition = %+v", tr)
	}

	w := l.Get(1)
	if w.Status != StatusActive {
		t.Errorf("Status = %s, want active", w.Status)
	}
	if w.Stage != 1 {
		t.Errorf("Stage = %d, want 1 (admission always starts at stage 1)", w.Stage)
	}

	// Second activation is a no-op.
	if tr := l.Activate(1); tr != nil {
		t.Errorf("re-activation transition = %+v, want nil", tr)
	}

	// Unknown ID is a no-op.
	if tr := l.Activate(99); tr != nil {
		t.Errorf("unknown ID transition = %+v, want nil", tr)
	}
}

func TestNextUntestedIsFIFO(t *testing.T) {
	l := newTestLedger(t, 3)

	l.Activate(1)

	w := l.NextUntested()
	if w == nil || w.MasteryID != 2 {
		t.Fatalf("NextUntested = %+v, want mastery ID 2", w)
	}

	l.Activate(2)
	l.Activate(3)
	if w := l.NextUntested(); w != nil {
		t.Errorf("NextUntested = %+v, want nil", w)
	}
}

func TestCountAndActiveWords(t *testing.T) {
	l := newTestLedger(t, 4)
	l.Activate(1)
	l.Activate(2)
	l.Get(2).Status = StatusMastered

	if got := l.Count(StatusActive); got != 1 {
		t.Errorf("Count(active) = %d, want 1", got)
	}
	if got := l.Count(StatusUntested); got != 2 {
		t.Errorf("Count(untested) = %d, want 2", got)
	}

	active := l.ActiveWords()
	if len(active) != 1 || active[0].MasteryID != 1 {
		t.Errorf("ActiveWords = %+v", active)
	}
}

func TestExhausted(t *testing.T) {
	l := newTestLedger(t, 2)
	if l.Exhausted() {
		t.Error("fresh ledger should not be exhausted")
	}

	l.Activate(1)
	l.Activate(2)
	l.Get(1).Status = StatusMastered
	if l.Exhausted() {
		t.Error("one word still active")
	}

	l.Get(2).Status = StatusSkipped
	if !l.Exhausted() {
		t.Error("all words terminal, want exhausted")
	}
}

func TestExhaustedOnEmptyLedger(t *testing.T) {
	if !New().Exhausted() {
		t.Error("empty ledger should be exhausted")
	}
}
