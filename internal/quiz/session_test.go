package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wordling/wordling/internal/mastery"
	"github.com/wordling/wordling/internal/progress"
	"github.com/wordling/wordling/internal/vocab"
)

type memResults struct {
	entries []mastery.Result
}

func (m *memResults) Append(_ context.Context, r mastery.Result) error {
	m.entries = append(m.entries, r)
	return nil
}

func (m *memResults) ForWord(_ context.Context, wordID uuid.UUID) ([]mastery.Result, error) {
	var out []mastery.Result
	for _, r := range m.entries {
		if r.WordID == wordID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResults) All(_ context.Context) ([]mastery.Result, error) {
	return append([]mastery.Result(nil), m.entries...), nil
}

type memStatuses struct {
	statuses map[uuid.UUID]mastery.Status
}

func newMemStatuses() *memStatuses {
	return &memStatuses{statuses: make(map[uuid.UUID]mastery.Status)}
}

func (m *memStatuses) Get(_ context.Context, wordID uuid.UUID) (mastery.Status, error) {
	if s, ok := m.statuses[wordID]; ok {
		return s, nil
	}
	return mastery.StatusNew, nil
}

func (m *memStatuses) Set(_ context.Context, wordID uuid.UUID, status mastery.Status) error {
	m.statuses[wordID] = status
	return nil
}

func (m *memStatuses) CountByStatus(_ context.Context) (map[mastery.Status]int, error) {
	counts := make(map[mastery.Status]int)
	for _, s := range m.statuses {
		counts[s]++
	}
	return counts, nil
}

type memDays struct {
	days map[string]progress.DailyProgress
}

func newMemDays() *memDays {
	return &memDays{days: make(map[string]progress.DailyProgress)}
}

func (m *memDays) GetDay(_ context.Context, key string) (*progress.DailyProgress, error) {
	if d, ok := m.days[key]; ok {
		return &d, nil
	}
	return nil, nil
}

func (m *memDays) PutDay(_ context.Context, p *progress.DailyProgress) error {
	m.days[p.DayKey] = *p
	return nil
}

func (m *memDays) History(_ context.Context) ([]progress.DailyProgress, error) {
	out := make([]progress.DailyProgress, 0, len(m.days))
	for _, d := range m.days {
		out = append(out, d)
	}
	return out, nil
}

type sessionEnv struct {
	results  *memResults
	statuses *memStatuses
	days     *memDays
	mastery  *mastery.Service
	tracker  *progress.Tracker
}

func newSessionEnv() *sessionEnv {
	env := &sessionEnv{
		results:  &memResults{},
		statuses: newMemStatuses(),
		days:     newMemDays(),
	}
	env.mastery = mastery.NewService(env.results, env.statuses)
	env.tracker = progress.NewTracker(env.days)
	return env
}

func choiceQuestion(word vocab.Word, answer string) Question {
	return Question{
		ID:            uuid.New(),
		Kind:          KindMultipleChoice,
		Prompt:        "Define " + word.Text,
		CorrectAnswer: answer,
		Options:       []string{answer, "b", "c", "d"},
		Word:          word,
	}
}

func questionsFor(words []vocab.Word, n int) []Question {
	qs := make([]Question, n)
	for i := 0; i < n; i++ {
		w := words[i%len(words)]
		qs[i] = choiceQuestion(w, w.Text)
	}
	return qs
}

func TestNewSession_RejectsEmpty(t *testing.T) {
	if _, err := NewSession(nil); err != ErrNoQuestions {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestSession_ProgressMonotonic(t *testing.T) {
	words := testWords("a", "b", "c")
	s, err := NewSession(questionsFor(words, 6))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	prev := s.Progress()
	if prev != 0 {
		t.Errorf("initial progress = %v, want 0", prev)
	}
	for !s.IsComplete() {
		if err := s.Answer(true); err != nil {
			t.Fatalf("Answer: %v", err)
		}
		p := s.Progress()
		if p < prev {
			t.Errorf("progress decreased: %v -> %v", prev, p)
		}
		prev = p
	}
	if prev != 1.0 {
		t.Errorf("final progress = %v, want 1.0", prev)
	}
	if s.CurrentQuestion() != nil {
		t.Error("CurrentQuestion non-nil after completion")
	}
	if err := s.Answer(true); err != ErrSessionComplete {
		t.Errorf("Answer after completion = %v, want ErrSessionComplete", err)
	}
}

func TestSession_ReviewWordsKeepDuplicates(t *testing.T) {
	w := testWords("tricky")[0]
	qs := []Question{choiceQuestion(w, w.Text), choiceQuestion(w, w.Text), choiceQuestion(w, w.Text)}
	s, err := NewSession(qs)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s.Answer(false)
	s.Answer(true)
	s.Answer(false)

	if len(s.ReviewWords) != 2 {
		t.Fatalf("review words = %d, want 2 (one per miss, duplicates kept)", len(s.ReviewWords))
	}
	for _, rw := range s.ReviewWords {
		if rw.ID != w.ID {
			t.Errorf("review word = %v, want %v", rw.ID, w.ID)
		}
	}
}

func TestSession_FinishRecordsOutcome(t *testing.T) {
	ctx := context.Background()
	env := newSessionEnv()
	words := testWords("w1", "w2", "w3", "w4", "w5")
	s, err := NewSession(questionsFor(words, 10))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	// 7 correct, 3 incorrect.
	for i := 0; i < 10; i++ {
		if err := s.Answer(i < 7); err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
	}

	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	if err := s.Finish(ctx, env.mastery, env.tracker, now); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if len(env.results.entries) != 10 {
		t.Errorf("result log entries = %d, want 10", len(env.results.entries))
	}
	incorrect := 0
	for _, r := range env.results.entries {
		if !r.Correct {
			incorrect++
		}
	}
	if incorrect != 3 {
		t.Errorf("incorrect entries = %d, want 3", incorrect)
	}

	day := env.days.days[progress.DayKeyFor(now)]
	if day.QuizzesTaken != 1 {
		t.Errorf("QuizzesTaken = %d, want 1", day.QuizzesTaken)
	}
	if day.CorrectAnswers != 7 || day.IncorrectAnswers != 3 {
		t.Errorf("day = %+v, want correct=7 incorrect=3", day)
	}
	if day.WordsReviewed != 10 {
		t.Errorf("WordsReviewed = %d, want 10", day.WordsReviewed)
	}
}

func TestSession_FinishIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newSessionEnv()
	words := testWords("a", "b", "c")
	s, err := NewSession(questionsFor(words, 3))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for !s.IsComplete() {
		s.Answer(true)
	}

	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	if err := s.Finish(ctx, env.mastery, env.tracker, now); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	if !s.Finished() {
		t.Error("Finished() = false after Finish")
	}
	if err := s.Finish(ctx, env.mastery, env.tracker, now); err != nil {
		t.Fatalf("second Finish: %v", err)
	}

	if len(env.results.entries) != 3 {
		t.Errorf("result log entries = %d after double finish, want 3", len(env.results.entries))
	}
	day := env.days.days[progress.DayKeyFor(now)]
	if day.QuizzesTaken != 1 {
		t.Errorf("QuizzesTaken = %d after double finish, want 1", day.QuizzesTaken)
	}
}

func TestSession_FinishRequiresCompletion(t *testing.T) {
	env := newSessionEnv()
	s, err := NewSession(questionsFor(testWords("a", "b", "c"), 3))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Answer(true)

	err = s.Finish(context.Background(), env.mastery, env.tracker, time.Now())
	if err != ErrSessionActive {
		t.Errorf("Finish on active session = %v, want ErrSessionActive", err)
	}
	if len(env.results.entries) != 0 {
		t.Errorf("result log entries = %d, want 0", len(env.results.entries))
	}
}

func TestSession_MarkReviewed(t *testing.T) {
	ctx := context.Background()
	env := newSessionEnv()
	w := testWords("missed")[0]
	qs := []Question{choiceQuestion(w, w.Text), choiceQuestion(w, w.Text)}
	s, err := NewSession(qs)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Answer(false)
	s.Answer(false)

	if err := s.MarkReviewed(ctx, env.mastery, w.ID); err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	if len(s.ReviewWords) != 1 {
		t.Errorf("review words = %d after one mark, want 1", len(s.ReviewWords))
	}
	status, _ := env.mastery.Status(ctx, w.ID)
	if status != mastery.StatusLearning {
		t.Errorf("status = %s, want learning override", status)
	}
}

func TestSession_MarkAllReviewed(t *testing.T) {
	ctx := context.Background()
	env := newSessionEnv()
	words := testWords("x", "y")
	qs := []Question{choiceQuestion(words[0], "x"), choiceQuestion(words[1], "y")}
	s, err := NewSession(qs)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Answer(false)
	s.Answer(false)

	if err := s.MarkAllReviewed(ctx, env.mastery); err != nil {
		t.Fatalf("MarkAllReviewed: %v", err)
	}
	if len(s.ReviewWords) != 0 {
		t.Errorf("review words = %d, want 0", len(s.ReviewWords))
	}
	for _, w := range words {
		status, _ := env.mastery.Status(ctx, w.ID)
		if status != mastery.StatusLearning {
			t.Errorf("status for %s = %s, want learning", w.Text, status)
		}
	}
}
