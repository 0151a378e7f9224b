package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wordling/wordling/internal/vocab"
)

// LearnerRepo purges per-word learner state. Word deletion cascades through
// here so no orphaned results, statuses, sentences or flags survive.
type LearnerRepo struct {
	db *sqlx.DB
}

// PurgeWord implements vocab.LearnerData.
func (r *LearnerRepo) PurgeWord(ctx context.Context, wordID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin purge: %w", err)
	}
	defer tx.Rollback()

	id := wordID.String()
	steps := []struct {
		query string
		arg   string
	}{
		{`DELETE FROM quiz_results WHERE word_id = ?`, id},
		{`DELETE FROM word_statuses WHERE word_id = ?`, id},
		{`DELETE FROM kv WHERE key = ?`, SentencesKey(wordID)},
		{`DELETE FROM kv WHERE key = ?`, vocab.FavoriteKey(wordID)},
	}
	for _, s := range steps {
		if _, err := tx.ExecContext(ctx, s.query, s.arg); err != nil {
			return fmt.Errorf("purge word %s: %w", id, err)
		}
	}
	return tx.Commit()
}
