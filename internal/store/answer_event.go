package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wordwave/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWordMasteryID(data.WordMasteryID).
		SetWordText(data.WordText).
		SetStage(data.Stage).
		SetQuestionType(data.QuestionType).
		SetStudentAnswer(data.StudentAnswer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetAlmost(data.Almost).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) WordAccuracy(ctx context.Context, wordText string) (int, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.WordText(wordText)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query word accuracy: %w", err)
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return correct, len(events), nil
}
