package progress

import (
	"context"
	"sort"
	"testing"
	"time"
)

// memStore implements Store in memory for tests.
type memStore struct {
	days map[string]DailyProgress
	puts int
}

func newMemStore() *memStore {
	return &memStore{days: make(map[string]DailyProgress)}
}

func (m *memStore) GetDay(_ context.Context, key string) (*DailyProgress, error) {
	if d, ok := m.days[key]; ok {
		return &d, nil
	}
	return nil, nil
}

func (m *memStore) PutDay(_ context.Context, p *DailyProgress) error {
	m.days[p.DayKey] = *p
	m.puts++
	return nil
}

func (m *memStore) History(_ context.Context) ([]DailyProgress, error) {
	keys := make([]string, 0, len(m.days))
	for k := range m.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]DailyProgress, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.days[k])
	}
	return out, nil
}

func localDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func TestRecordActivity_SameDayMergesAdditively(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	tracker := NewTracker(store)

	morning := localDate(2025, 6, 10, 9)
	evening := localDate(2025, 6, 10, 21)

	if err := tracker.RecordActivity(ctx, Activity{QuizzesTaken: 1, CorrectAnswers: 1}, morning); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if err := tracker.RecordActivity(ctx, Activity{QuizzesTaken: 1, IncorrectAnswers: 1}, evening); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}

	if len(store.days) != 1 {
		t.Fatalf("day records = %d, want 1", len(store.days))
	}
	day := store.days[DayKeyFor(morning)]
	if day.CorrectAnswers != 1 || day.IncorrectAnswers != 1 || day.QuizzesTaken != 2 {
		t.Errorf("day = %+v, want correct=1 incorrect=1 quizzes=2", day)
	}
}

func TestRecordActivity_DistinctDays(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	tracker := NewTracker(store)

	tracker.RecordActivity(ctx, Activity{WordsLearned: 2}, localDate(2025, 6, 10, 12))
	tracker.RecordActivity(ctx, Activity{WordsLearned: 3}, localDate(2025, 6, 11, 12))

	history, err := tracker.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].DayKey >= history[1].DayKey {
		t.Errorf("history not ascending: %s then %s", history[0].DayKey, history[1].DayKey)
	}
	if history[0].WordsLearned != 2 || history[1].WordsLearned != 3 {
		t.Errorf("history = %+v", history)
	}
}

func TestRecordActivity_ClampsNegativeInputs(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	tracker := NewTracker(store)
	at := localDate(2025, 6, 10, 12)

	tracker.RecordActivity(ctx, Activity{CorrectAnswers: 3}, at)
	tracker.RecordActivity(ctx, Activity{CorrectAnswers: -5, QuizzesTaken: -1}, at)

	day := store.days[DayKeyFor(at)]
	if day.CorrectAnswers != 3 {
		t.Errorf("CorrectAnswers = %d, want 3 (negative increments clamped)", day.CorrectAnswers)
	}
	if day.QuizzesTaken != 0 {
		t.Errorf("QuizzesTaken = %d, want 0", day.QuizzesTaken)
	}
}

func TestToday_SynthesizesWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	tracker := NewTracker(store)
	now := localDate(2025, 6, 10, 12)

	today, err := tracker.Today(ctx, now)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if today.DayKey != DayKeyFor(now) {
		t.Errorf("DayKey = %s, want %s", today.DayKey, DayKeyFor(now))
	}
	if today.QuizzesTaken != 0 || today.CorrectAnswers != 0 {
		t.Errorf("synthesized record not zero: %+v", today)
	}
	if store.puts != 0 || len(store.days) != 0 {
		t.Errorf("read persisted a record: puts=%d days=%d", store.puts, len(store.days))
	}
}

func TestToday_ReturnsExistingRecord(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	tracker := NewTracker(store)
	now := localDate(2025, 6, 10, 12)

	tracker.RecordActivity(ctx, Activity{WordsReviewed: 4}, now)
	today, err := tracker.Today(ctx, now)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if today.WordsReviewed != 4 {
		t.Errorf("WordsReviewed = %d, want 4", today.WordsReviewed)
	}
}

func TestDayKeyFor_CollapsesWallClockDay(t *testing.T) {
	a := localDate(2025, 6, 10, 0)
	b := localDate(2025, 6, 10, 23)
	if DayKeyFor(a) != DayKeyFor(b) {
		t.Errorf("keys differ for same day: %s vs %s", DayKeyFor(a), DayKeyFor(b))
	}
	c := localDate(2025, 6, 11, 0)
	if DayKeyFor(a) == DayKeyFor(c) {
		t.Errorf("keys equal across days: %s", DayKeyFor(a))
	}
}
