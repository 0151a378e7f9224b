package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wordling/wordling/internal/mastery"
	"github.com/wordling/wordling/internal/progress"
	"github.com/wordling/wordling/internal/vocab"
)

// MinWords is the smallest word set a quiz can be generated from. Callers
// must refuse to request generation below this; the engine itself only
// checks for an empty question list.
const MinWords = 3

var (
	// ErrNoQuestions is returned when a session is started with zero
	// usable questions.
	ErrNoQuestions = errors.New("no usable questions")

	// ErrSessionComplete is returned when answering an already-completed
	// session.
	ErrSessionComplete = errors.New("session already complete")

	// ErrSessionActive is returned when finishing a session that still
	// has unanswered questions.
	ErrSessionActive = errors.New("session not complete")
)

// Session drives a single quiz attempt from start to finish.
//
// A session is ephemeral: it is never persisted, and an abandoned session
// leaves no trace — only Finish converts its outcome into persisted results
// and aggregates. All mutation methods are single-writer; one goroutine owns
// a session for its lifetime.
type Session struct {
	ID               uuid.UUID
	Questions        []Question
	CurrentIndex     int
	CorrectAnswers   int
	IncorrectAnswers int

	// Results records per-question correctness, keyed by question ID.
	Results map[uuid.UUID]bool

	// ReviewWords is a to-do list of words answered incorrectly.
	// Duplicates are intentional: a word missed on two questions appears
	// twice and must be reviewed twice.
	ReviewWords []vocab.Word

	finished bool
}

// NewSession starts a session over a non-empty ordered question sequence.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		ID:        uuid.New(),
		Questions: questions,
		Results:   make(map[uuid.UUID]bool, len(questions)),
	}, nil
}

// IsComplete reports whether every question has been answered.
func (s *Session) IsComplete() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// Progress is the fraction of questions answered, in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.CurrentIndex) / float64(len(s.Questions))
}

// CurrentQuestion returns the active question, or nil once complete.
func (s *Session) CurrentQuestion() *Question {
	if s.IsComplete() {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// Answer records the outcome for the current question and advances the
// index by exactly one. Each question is answered exactly once.
func (s *Session) Answer(isCorrect bool) error {
	q := s.CurrentQuestion()
	if q == nil {
		return ErrSessionComplete
	}

	if isCorrect {
		s.CorrectAnswers++
	} else {
		s.IncorrectAnswers++
		s.ReviewWords = append(s.ReviewWords, q.Word)
	}
	s.Results[q.ID] = isCorrect
	s.CurrentIndex++
	return nil
}

// Finish converts a completed session into persisted state: one quiz result
// per answered question, a reclassified status for every touched word, and
// a single additive ledger entry for the day.
//
// Finish is idempotent — a second call on the same session is a no-op, so
// UI re-renders can never double-count a quiz.
func (s *Session) Finish(ctx context.Context, m *mastery.Service, tracker *progress.Tracker, now time.Time) error {
	if !s.IsComplete() {
		return ErrSessionActive
	}
	if s.finished {
		return nil
	}

	// Iterate questions in order rather than ranging over the result map,
	// so the result log is appended deterministically.
	for i := range s.Questions {
		q := &s.Questions[i]
		correct, answered := s.Results[q.ID]
		if !answered {
			continue
		}
		if _, err := m.Record(ctx, q.Word.ID, correct, now); err != nil {
			return fmt.Errorf("record result for %q: %w", q.Word.Text, err)
		}
	}

	act := progress.Activity{
		QuizzesTaken:     1,
		WordsReviewed:    len(s.Results),
		CorrectAnswers:   s.CorrectAnswers,
		IncorrectAnswers: s.IncorrectAnswers,
	}
	if err := tracker.RecordActivity(ctx, act, now); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.finished = true
	return nil
}

// Finished reports whether Finish has already run.
func (s *Session) Finished() bool {
	return s.finished
}

// MarkReviewed removes one occurrence of the word from the review list and
// forces its status to learning. The override is deliberate: the learner
// asserting "I reviewed this" outranks the classifier's computed value.
func (s *Session) MarkReviewed(ctx context.Context, m *mastery.Service, wordID uuid.UUID) error {
	for i, w := range s.ReviewWords {
		if w.ID == wordID {
			s.ReviewWords = append(s.ReviewWords[:i], s.ReviewWords[i+1:]...)
			break
		}
	}
	return m.Override(ctx, wordID, mastery.StatusLearning)
}

// MarkAllReviewed applies MarkReviewed to every remaining review word and
// clears the list.
func (s *Session) MarkAllReviewed(ctx context.Context, m *mastery.Service) error {
	for _, w := range s.ReviewWords {
		if err := m.Override(ctx, w.ID, mastery.StatusLearning); err != nil {
			return err
		}
	}
	s.ReviewWords = nil
	return nil
}
