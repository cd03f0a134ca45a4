package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wordwave/ent"
	"github.com/abhisek/wordwave/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTestCode(data.TestCode).
		SetAction(data.Action).
		SetTotalWords(data.TotalWords).
		SetTotalAnswered(data.TotalAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetMasteredCount(data.MasteredCount).
		SetSkippedCount(data.SkippedCount).
		SetBestCombo(data.BestCombo).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("complete")).
		Order(ent.Desc(sessionevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:      e.SessionID,
			TestCode:       e.TestCode,
			Timestamp:      e.Timestamp,
			TotalWords:     e.TotalWords,
			TotalAnswered:  e.TotalAnswered,
			CorrectAnswers: e.CorrectAnswers,
			MasteredCount:  e.MasteredCount,
			SkippedCount:   e.SkippedCount,
			BestCombo:      e.BestCombo,
		})
	}
	return records, nil
}
