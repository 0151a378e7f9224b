package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memLog implements ResultLog in memory for tests.
type memLog struct {
	results []Result
	appends int
}

func (m *memLog) Append(_ context.Context, r Result) error {
	m.results = append(m.results, r)
	m.appends++
	return nil
}

func (m *memLog) ForWord(_ context.Context, wordID uuid.UUID) ([]Result, error) {
	var out []Result
	for _, r := range m.results {
		if r.WordID == wordID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memLog) All(_ context.Context) ([]Result, error) {
	return m.results, nil
}

// memStatuses implements StatusStore in memory for tests.
type memStatuses struct {
	statuses map[uuid.UUID]Status
	writes   int
}

func newMemStatuses() *memStatuses {
	return &memStatuses{statuses: make(map[uuid.UUID]Status)}
}

func (m *memStatuses) Get(_ context.Context, wordID uuid.UUID) (Status, error) {
	if s, ok := m.statuses[wordID]; ok {
		return s, nil
	}
	return StatusNew, nil
}

func (m *memStatuses) Set(_ context.Context, wordID uuid.UUID, status Status) error {
	m.statuses[wordID] = status
	m.writes++
	return nil
}

func (m *memStatuses) CountByStatus(_ context.Context) (map[Status]int, error) {
	counts := make(map[Status]int)
	for _, s := range m.statuses {
		counts[s]++
	}
	return counts, nil
}

func TestService_RecordProgression(t *testing.T) {
	ctx := context.Background()
	log := &memLog{}
	statuses := newMemStatuses()
	svc := NewService(log, statuses)
	wordID := uuid.New()
	now := time.Now()

	status, err := svc.Record(ctx, wordID, true, now)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if status != StatusLearning {
		t.Errorf("after 1 correct: %s, want learning", status)
	}

	svc.Record(ctx, wordID, true, now)
	status, err = svc.Record(ctx, wordID, true, now)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if status != StatusMastered {
		t.Errorf("after 3 correct: %s, want mastered", status)
	}
}

func TestService_ReclassifyWritesOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	log := &memLog{}
	statuses := newMemStatuses()
	svc := NewService(log, statuses)
	wordID := uuid.New()
	now := time.Now()

	if _, err := svc.Record(ctx, wordID, true, now); err != nil {
		t.Fatalf("Record: %v", err)
	}
	writesAfterFirst := statuses.writes

	// A second correct answer keeps the word at learning; the cache must
	// not be rewritten.
	if _, err := svc.Record(ctx, wordID, false, now); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if statuses.writes != writesAfterFirst {
		t.Errorf("cache writes = %d, want %d (no write on unchanged status)", statuses.writes, writesAfterFirst)
	}
}

func TestService_StatusDefaultsToNew(t *testing.T) {
	svc := NewService(&memLog{}, newMemStatuses())
	status, err := svc.Status(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status != StatusNew {
		t.Errorf("Status = %s, want new", status)
	}
}

func TestService_OverrideBypassesClassifier(t *testing.T) {
	ctx := context.Background()
	log := &memLog{}
	statuses := newMemStatuses()
	svc := NewService(log, statuses)
	wordID := uuid.New()

	// Mastered word forced back to learning by the review flow.
	now := time.Now()
	for i := 0; i < 5; i++ {
		svc.Record(ctx, wordID, true, now)
	}
	if err := svc.Override(ctx, wordID, StatusLearning); err != nil {
		t.Fatalf("Override: %v", err)
	}
	status, _ := svc.Status(ctx, wordID)
	if status != StatusLearning {
		t.Errorf("Status = %s, want learning after override", status)
	}
}
