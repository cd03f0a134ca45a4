package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wordwave/ent/wordevent"
	"github.com/abhisek/wordwave/internal/ledger"
)

func (r *eventRepo) AppendWordEvent(ctx context.Context, data WordEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.WordEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWordMasteryID(data.WordMasteryID).
		SetWordText(data.WordText).
		SetFromStatus(data.FromStatus).
		SetToStatus(data.ToStatus).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save word event: %w", err)
	}
	return nil
}

func (r *eventRepo) OutcomeTotals(ctx context.Context) (int, int, error) {
	mastered, err := r.client.WordEvent.Query().
		Where(wordevent.ToStatus(string(ledger.StatusMastered))).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count mastered: %w", err)
	}

	skipped, err := r.client.WordEvent.Query().
		Where(wordevent.ToStatus(string(ledger.StatusSkipped))).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count skipped: %w", err)
	}

	return mastered, skipped, nil
}
