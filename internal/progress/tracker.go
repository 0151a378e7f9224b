package progress

import (
	"context"
	"fmt"
	"time"
)

// Store is the persistence surface for the daily ledger.
type Store interface {
	// GetDay returns the record for a day key, or nil when absent.
	GetDay(ctx context.Context, dayKey string) (*DailyProgress, error)

	// PutDay upserts the record for its day key.
	PutDay(ctx context.Context, p *DailyProgress) error

	// History returns all records ordered by day ascending.
	History(ctx context.Context) ([]DailyProgress, error)
}

// Tracker maintains the additive daily activity ledger.
//
// Mutations are single-writer: callers are expected to serialize
// RecordActivity calls (the CLI runs sessions one at a time). Repeated
// sequential application is safe — same-day records merge additively.
type Tracker struct {
	store Store
}

// NewTracker wires a tracker to its store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// RecordActivity merges one activity batch into the record for at's
// calendar day, creating the record if needed. Negative counts are clamped
// to zero.
func (t *Tracker) RecordActivity(ctx context.Context, act Activity, at time.Time) error {
	act = act.clamped()
	key := DayKeyFor(at)

	day, err := t.store.GetDay(ctx, key)
	if err != nil {
		return fmt.Errorf("load day %s: %w", key, err)
	}
	if day == nil {
		day = &DailyProgress{DayKey: key, Date: startOfDay(at)}
	}

	day.WordsLearned += act.WordsLearned
	day.WordsReviewed += act.WordsReviewed
	day.QuizzesTaken += act.QuizzesTaken
	day.CorrectAnswers += act.CorrectAnswers
	day.IncorrectAnswers += act.IncorrectAnswers

	if err := t.store.PutDay(ctx, day); err != nil {
		return fmt.Errorf("save day %s: %w", key, err)
	}
	return nil
}

// History returns the full ledger ordered by date ascending.
func (t *Tracker) History(ctx context.Context) ([]DailyProgress, error) {
	return t.store.History(ctx)
}

// Today returns the record for now's calendar day. When no record exists
// yet, a zero record is synthesized and NOT persisted — reads never mutate
// the ledger.
func (t *Tracker) Today(ctx context.Context, now time.Time) (DailyProgress, error) {
	key := DayKeyFor(now)
	day, err := t.store.GetDay(ctx, key)
	if err != nil {
		return DailyProgress{}, fmt.Errorf("load day %s: %w", key, err)
	}
	if day == nil {
		return DailyProgress{DayKey: key, Date: startOfDay(now)}, nil
	}
	return *day, nil
}

func startOfDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
