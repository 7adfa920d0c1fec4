package store

import (
	"context"
	"fmt"

	"github.com/haxx0rman/qBank/ent"
	"github.com/haxx0rman/qBank/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionKind(data.QuestionKind).
		SetResult(data.Result).
		SetResponseTimeMs(data.ResponseTimeMs).
		SetUserRatingBefore(data.UserRatingBefore).
		SetUserRatingAfter(data.UserRatingAfter).
		SetQuestionRatingBefore(data.QuestionRatingBefore).
		SetQuestionRatingAfter(data.QuestionRatingAfter).
		SetIntervalDays(data.IntervalDays).
		SetEaseFactor(data.EaseFactor).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptEvent, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	events := make([]AttemptEvent, 0, len(rows))
	for _, e := range rows {
		events = append(events, AttemptEvent{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:            e.SessionID,
				QuestionID:           e.QuestionID,
				QuestionKind:         e.QuestionKind,
				Result:               e.Result,
				ResponseTimeMs:       e.ResponseTimeMs,
				UserRatingBefore:     e.UserRatingBefore,
				UserRatingAfter:      e.UserRatingAfter,
				QuestionRatingBefore: e.QuestionRatingBefore,
				QuestionRatingAfter:  e.QuestionRatingAfter,
				IntervalDays:         e.IntervalDays,
				EaseFactor:           e.EaseFactor,
			},
		})
	}
	return events, nil
}
