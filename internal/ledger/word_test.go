package ledger

import "testing"

func activeWord(id int64, stage, fails int) *Word {
	return &Word{
		MasteryID: id,
		WordID:    id * 100,
		Text:      "palabra",
		Stage:     stage,
		FailCount: fails,
		Status:    StatusActive,
	}
}

func TestApplyVerdictCorrectAdvancesStage(t *testing.T) {
	w := activeWord(1, 2, 0)

	tr := ApplyVerdict(w, Verdict{IsCorrect: true, NewStage: 3}, 3)

	if tr != nil {
		t.Errorf("transition = %+v, want nil", tr)
	}
	if w.Stage != 3 {
		t.Errorf("Stage = %d, want 3", w.Stage)
	}
	if w.Status != StatusActive {
		t.Errorf("Status = %s, want active", w.Status)
	}
}

func TestApplyVerdictMastered(t *testing.T) {
	w := activeWord(1, MaxStage, 0)

	tr := ApplyVerdict(w, Verdict{IsCorrect: true, NewStage: MaxStage, WordMastered: true}, 3)

	if w.Status != StatusMastered {
		t.Fatalf("Status = %s, want mastered", w.Status)
	}
	if tr == nil {
		t.Fatal("expected a transition")
	}
	if tr.From != StatusActive || tr.To != StatusMastered || tr.Trigger != "word-mastered" {
		t.Errorf("transition = %+v", tr)
	}
}

func TestApplyVerdictIncorrectCostsALife(t *testing.T) {
	w := activeWord(1, 3, 0)

	tr := ApplyVerdict(w, Verdict{IsCorrect: false, CorrectAnswer: "dog"}, 3)

	if tr != nil {
		t.Errorf("transition = %+v, want nil", tr)
	}
	if w.FailCount != 1 {
		t.Errorf("FailCount = %d, want 1", w.FailCount)
	}
	if w.Stage != 3 {
		t.Errorf("Stage = %d, want 3 (failure must not demote)", w.Stage)
	}
}

func TestApplyVerdictFailsExhaustedSkips(t *testing.T) {
	w := activeWord(1, 2, 2)

	tr := ApplyVerdict(w, Verdict{IsCorrect: false}, 3)

	if w.Status != StatusSkipped {
		t.Fatalf("Status = %s, want skipped", w.Status)
	}
	if w.FailCount != 3 {
		t.Errorf("FailCount = %d, want 3", w.FailCount)
	}
	if tr == nil || tr.Trigger != "fails-exhausted" {
		t.Errorf("transition = %+v, want fails-exhausted", tr)
	}
}

func TestApplyVerdictAlmostCorrectIsInformationalOnly(t *testing.T) {
	tests := []struct {
		name      string
		isCorrect bool
	}{
		{"near-miss counted correct", true},
		{"near-miss counted incorrect", false},
	}

	for _, tt := range tests {
		w := activeWord(1, 2, 1)
		tr := ApplyVerdict(w, Verdict{IsCorrect: tt.isCorrect, AlmostCorrect: true, NewStage: 3}, 3)

		if tr != nil {
			t.Errorf("%s: transition = %+v, want nil", tt.name, tr)
		}
		if w.Stage != 2 {
			t.Errorf("%s: Stage = %d, want 2", tt.name, w.Stage)
		}
		if w.FailCount != 1 {
			t.Errorf("%s: FailCount = %d, want 1", tt.name, w.FailCount)
		}
	}
}

func TestApplyVerdictIgnoresNonActiveWords(t *testing.T) {
	for _, status := range []Status{StatusUntested, StatusMastered, StatusSkipped} {
		w := activeWord(1, 2, 1)
		w.Status = status

		tr := ApplyVerdict(w, Verdict{IsCorrect: false}, 3)

		if tr != nil {
			t.Errorf("status %s: transition = %+v, want nil", status, tr)
		}
		if w.FailCount != 1 {
			t.Errorf("status %s: FailCount = %d, want 1", status, w.FailCount)
		}
		if w.Status != status {
			t.Errorf("status %s changed to %s", status, w.Status)
		}
	}
}

func TestApplyVerdictZeroNewStageKeepsStage(t *testing.T) {
	w := activeWord(1, 4, 0)

	ApplyVerdict(w, Verdict{IsCorrect: true, NewStage: 0}, 3)

	if w.Stage != 4 {
		t.Errorf("Stage = %d, want 4", w.Stage)
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusUntested, false},
		{StatusActive, false},
		{StatusMastered, true},
		{StatusSkipped, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
