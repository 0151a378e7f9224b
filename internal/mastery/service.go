package mastery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResultLog is the append-only quiz result history for words.
// Entries are never mutated; they are only bulk-cleared when a word is
// deleted.
type ResultLog interface {
	// Append records one quiz outcome.
	Append(ctx context.Context, r Result) error

	// ForWord returns the full history for a word, ordered oldest first.
	ForWord(ctx context.Context, wordID uuid.UUID) ([]Result, error)

	// All returns every recorded result, ordered oldest first.
	All(ctx context.Context) ([]Result, error)
}

// StatusStore caches the derived per-word status tag.
type StatusStore interface {
	// Get returns the cached status, StatusNew when absent.
	Get(ctx context.Context, wordID uuid.UUID) (Status, error)

	// Set writes the cached status.
	Set(ctx context.Context, wordID uuid.UUID, status Status) error

	// CountByStatus returns how many words carry each cached status.
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

// Service maintains the cached status as a derived value: recompute from the
// result log, compare with the cache, write only on change. The cache is an
// efficiency measure, not a source of truth — the log always wins.
type Service struct {
	results  ResultLog
	statuses StatusStore
}

// NewService wires a mastery service from its repositories.
func NewService(results ResultLog, statuses StatusStore) *Service {
	return &Service{results: results, statuses: statuses}
}

// Status returns the cached status for a word.
func (s *Service) Status(ctx context.Context, wordID uuid.UUID) (Status, error) {
	return s.statuses.Get(ctx, wordID)
}

// Record appends one quiz outcome and reclassifies the word.
// Returns the (possibly unchanged) status after reclassification.
func (s *Service) Record(ctx context.Context, wordID uuid.UUID, correct bool, at time.Time) (Status, error) {
	if err := s.results.Append(ctx, Result{WordID: wordID, Correct: correct, At: at}); err != nil {
		return StatusNew, fmt.Errorf("append result: %w", err)
	}
	return s.Reclassify(ctx, wordID)
}

// Reclassify recomputes a word's status from its full history and persists
// it only if it differs from the cached value.
func (s *Service) Reclassify(ctx context.Context, wordID uuid.UUID) (Status, error) {
	history, err := s.results.ForWord(ctx, wordID)
	if err != nil {
		return StatusNew, fmt.Errorf("load results: %w", err)
	}
	computed := Classify(history)

	cached, err := s.statuses.Get(ctx, wordID)
	if err != nil {
		return StatusNew, fmt.Errorf("load cached status: %w", err)
	}
	if computed == cached {
		return computed, nil
	}
	if err := s.statuses.Set(ctx, wordID, computed); err != nil {
		return StatusNew, fmt.Errorf("cache status: %w", err)
	}
	return computed, nil
}

// Override writes a status unconditionally, bypassing the classifier.
// Used by the review flow, which marks missed words as learning regardless
// of their computed value.
func (s *Service) Override(ctx context.Context, wordID uuid.UUID, status Status) error {
	if err := s.statuses.Set(ctx, wordID, status); err != nil {
		return fmt.Errorf("cache status: %w", err)
	}
	return nil
}
