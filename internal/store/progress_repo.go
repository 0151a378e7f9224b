package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wordling/wordling/internal/progress"
)

// ProgressRepo persists the daily activity ledger.
type ProgressRepo struct {
	db *sqlx.DB
}

type progressRow struct {
	DayKey           string `db:"day_key"`
	Date             string `db:"date"`
	WordsLearned     int    `db:"words_learned"`
	WordsReviewed    int    `db:"words_reviewed"`
	QuizzesTaken     int    `db:"quizzes_taken"`
	CorrectAnswers   int    `db:"correct_answers"`
	IncorrectAnswers int    `db:"incorrect_answers"`
}

func (r progressRow) toProgress() (progress.DailyProgress, error) {
	date, err := time.Parse(timeFormat, r.Date)
	if err != nil {
		return progress.DailyProgress{}, fmt.Errorf("parse date %q: %w", r.Date, err)
	}
	return progress.DailyProgress{
		DayKey:           r.DayKey,
		Date:             date.Local(),
		WordsLearned:     r.WordsLearned,
		WordsReviewed:    r.WordsReviewed,
		QuizzesTaken:     r.QuizzesTaken,
		CorrectAnswers:   r.CorrectAnswers,
		IncorrectAnswers: r.IncorrectAnswers,
	}, nil
}

func (r *ProgressRepo) GetDay(ctx context.Context, dayKey string) (*progress.DailyProgress, error) {
	var row progressRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM daily_progress WHERE day_key = ?`, dayKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	p, err := row.toProgress()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepo) PutDay(ctx context.Context, p *progress.DailyProgress) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_progress
		   (day_key, date, words_learned, words_reviewed, quizzes_taken, correct_answers, incorrect_answers)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(day_key) DO UPDATE SET
		   words_learned = excluded.words_learned,
		   words_reviewed = excluded.words_reviewed,
		   quizzes_taken = excluded.quizzes_taken,
		   correct_answers = excluded.correct_answers,
		   incorrect_answers = excluded.incorrect_answers`,
		p.DayKey, p.Date.Format(timeFormat), p.WordsLearned, p.WordsReviewed,
		p.QuizzesTaken, p.CorrectAnswers, p.IncorrectAnswers)
	if err != nil {
		return fmt.Errorf("put day: %w", err)
	}
	return nil
}

func (r *ProgressRepo) History(ctx context.Context) ([]progress.DailyProgress, error) {
	var rows []progressRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM daily_progress ORDER BY day_key`); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	out := make([]progress.DailyProgress, 0, len(rows))
	for _, row := range rows {
		p, err := row.toProgress()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
