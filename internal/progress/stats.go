package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/wordling/wordling/internal/mastery"
)

// Statistics is the typed aggregate returned to stats consumers. It replaces
// ad hoc per-screen queries with one record covering registry counts, quiz
// totals, and the daily ledger.
type Statistics struct {
	TotalWords    int
	NewWords      int
	LearningWords int
	MasteredWords int

	TotalQuizzes     int
	CorrectAnswers   int
	IncorrectAnswers int
	SuccessRate      float64

	Today   DailyProgress
	History []DailyProgress
}

// Statistics assembles the aggregate from the ledger, the cached status
// counts, and the full result log.
func (t *Tracker) Statistics(ctx context.Context, now time.Time, totalWords int, statuses mastery.StatusStore, results mastery.ResultLog) (*Statistics, error) {
	counts, err := statuses.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count statuses: %w", err)
	}

	all, err := results.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	correct := 0
	for _, r := range all {
		if r.Correct {
			correct++
		}
	}
	var rate float64
	if len(all) > 0 {
		rate = float64(correct) / float64(len(all))
	}

	history, err := t.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	quizzes := 0
	for _, d := range history {
		quizzes += d.QuizzesTaken
	}

	today, err := t.Today(ctx, now)
	if err != nil {
		return nil, err
	}

	// Words with no cached status have never been quizzed and count as new.
	tracked := counts[mastery.StatusNew] + counts[mastery.StatusLearning] + counts[mastery.StatusMastered]
	newWords := counts[mastery.StatusNew]
	if totalWords > tracked {
		newWords += totalWords - tracked
	}

	return &Statistics{
		TotalWords:       totalWords,
		NewWords:         newWords,
		LearningWords:    counts[mastery.StatusLearning],
		MasteredWords:    counts[mastery.StatusMastered],
		TotalQuizzes:     quizzes,
		CorrectAnswers:   correct,
		IncorrectAnswers: len(all) - correct,
		SuccessRate:      rate,
		Today:            today,
		History:          history,
	}, nil
}
