package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wordling/wordling/internal/mastery"
)

// ResultRepo is the append-only quiz result log.
type ResultRepo struct {
	db *sqlx.DB
}

type resultRow struct {
	WordID  string `db:"word_id"`
	Correct bool   `db:"correct"`
	At      string `db:"at"`
}

func (r resultRow) toResult() (mastery.Result, error) {
	id, err := uuid.Parse(r.WordID)
	if err != nil {
		return mastery.Result{}, fmt.Errorf("parse word id %q: %w", r.WordID, err)
	}
	at, err := time.Parse(timeFormat, r.At)
	if err != nil {
		return mastery.Result{}, fmt.Errorf("parse result time %q: %w", r.At, err)
	}
	return mastery.Result{WordID: id, Correct: r.Correct, At: at}, nil
}

func (r *ResultRepo) Append(ctx context.Context, res mastery.Result) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results (word_id, correct, at) VALUES (?, ?, ?)`,
		res.WordID.String(), res.Correct, res.At.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (r *ResultRepo) ForWord(ctx context.Context, wordID uuid.UUID) ([]mastery.Result, error) {
	var rows []resultRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT word_id, correct, at FROM quiz_results WHERE word_id = ? ORDER BY id`,
		wordID.String())
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return toResults(rows)
}

func (r *ResultRepo) All(ctx context.Context) ([]mastery.Result, error) {
	var rows []resultRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT word_id, correct, at FROM quiz_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return toResults(rows)
}

func toResults(rows []resultRow) ([]mastery.Result, error) {
	out := make([]mastery.Result, 0, len(rows))
	for _, row := range rows {
		res, err := row.toResult()
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// StatusRepo caches the derived per-word status.
type StatusRepo struct {
	db *sqlx.DB
}

func (r *StatusRepo) Get(ctx context.Context, wordID uuid.UUID) (mastery.Status, error) {
	var status string
	err := r.db.GetContext(ctx, &status,
		`SELECT status FROM word_statuses WHERE word_id = ?`, wordID.String())
	if errors.Is(err, sql.ErrNoRows) {
		// Absent rows read as new; the cache is lazily populated.
		return mastery.StatusNew, nil
	}
	if err != nil {
		return mastery.StatusNew, fmt.Errorf("get status: %w", err)
	}
	return mastery.ParseStatus(status), nil
}

func (r *StatusRepo) Set(ctx context.Context, wordID uuid.UUID, status mastery.Status) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO word_statuses (word_id, status) VALUES (?, ?)
		 ON CONFLICT(word_id) DO UPDATE SET status = excluded.status`,
		wordID.String(), string(status))
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

func (r *StatusRepo) CountByStatus(ctx context.Context) (map[mastery.Status]int, error) {
	type countRow struct {
		Status string `db:"status"`
		N      int    `db:"n"`
	}
	var rows []countRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT status, COUNT(*) AS n FROM word_statuses GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count statuses: %w", err)
	}
	counts := make(map[mastery.Status]int, len(rows))
	for _, row := range rows {
		counts[mastery.ParseStatus(row.Status)] = row.N
	}
	return counts, nil
}
