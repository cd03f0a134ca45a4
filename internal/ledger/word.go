package ledger

// MaxStage is the progression depth at which a word can be mastered.
const MaxStage = 5

// Word is one vocabulary item under test in a session. Created once at
// bootstrap, mutated only by verdict application, never deleted — terminal
// words stay in the ledger for final accounting.
type Word struct {
	// MasteryID is the session-scoped identity, stable for the session.
	MasteryID int64

	// WordID references the underlying vocabulary entry.
	WordID int64

	Text        string
	Translation string

	// Stage is the repeated-exposure progression depth (1..MaxStage).
	Stage int

	// FailCount is the number of fully-incorrect answers so far.
	// Monotonically non-decreasing.
	FailCount int

	Status Status

	// Difficulty is an optional score used only for question selection
	// tie-breaking.
	Difficulty float64
}

// Verdict is the collaborator's grading result projected into the ledger's
// vocabulary.
type Verdict struct {
	IsCorrect     bool
	AlmostCorrect bool
	CorrectAnswer string
	NewStage      int
	WordMastered  bool
}

// ApplyVerdict applies the stage state machine transition for one answer.
// It mutates only the given word and returns the transition that occurred,
// or nil when the verdict caused no status change.
//
// Rules, for an active word:
//   - almost-correct (near-miss): informational only — no stage or fail
//     mutation, no transition.
//   - fully correct: stage advances to the server-reported new stage; if the
//     server flags mastery, the word becomes mastered.
//   - fully incorrect: failCount increments; reaching maxFails skips the
//     word. The stage never demotes — failure costs a life, not progress.
//
// Words not in active status are left untouched: a verdict is applied
// exactly once, to the word matching the just-answered question.
func ApplyVerdict(w *Word, v Verdict, maxFails int) *StateTransition {
	if w.Status != StatusActive {
		return nil
	}

	if v.AlmostCorrect {
		return nil
	}

	if v.IsCorrect {
		if v.NewStage > 0 {
			w.Stage = v.NewStage
		}
		if v.WordMastered {
			w.Status = StatusMastered
			return &StateTransition{
				MasteryID: w.MasteryID,
				From:      StatusActive,
				To:        StatusMastered,
				Trigger:   "word-mastered",
			}
		}
		return nil
	}

	w.FailCount++
	if w.FailCount >= maxFails {
		w.Status = StatusSkipped
		return &StateTransition{
			MasteryID: w.MasteryID,
			From:      StatusActive,
			To:        StatusSkipped,
			Trigger:   "fails-exhausted",
		}
	}
	return nil
}
