package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wordling/wordling/internal/vocab"
)

const timeFormat = time.RFC3339Nano

// WordRepo persists words and their group memberships. The word side owns
// the relationship: membership rows are written from word updates only.
type WordRepo struct {
	db *sqlx.DB
}

type wordRow struct {
	ID          string `db:"id"`
	Text        string `db:"text"`
	Type        string `db:"type"`
	Note        string `db:"note"`
	Translation string `db:"translation"`
	CreatedAt   string `db:"created_at"`
}

func (r wordRow) toWord() (vocab.Word, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return vocab.Word{}, fmt.Errorf("parse word id %q: %w", r.ID, err)
	}
	createdAt, err := time.Parse(timeFormat, r.CreatedAt)
	if err != nil {
		return vocab.Word{}, fmt.Errorf("parse created_at %q: %w", r.CreatedAt, err)
	}
	return vocab.Word{
		ID:          id,
		Text:        r.Text,
		Type:        vocab.WordType(r.Type),
		Note:        r.Note,
		Translation: r.Translation,
		CreatedAt:   createdAt,
	}, nil
}

func (r *WordRepo) Insert(ctx context.Context, w *vocab.Word) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO words (id, text, type, note, translation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID.String(), w.Text, string(w.Type), w.Note, w.Translation,
		w.CreatedAt.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("insert word: %w", err)
	}
	if err := setGroupsTx(ctx, tx, w.ID, w.GroupIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *WordRepo) Update(ctx context.Context, w *vocab.Word) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE words SET text = ?, type = ?, note = ?, translation = ? WHERE id = ?`,
		w.Text, string(w.Type), w.Note, w.Translation, w.ID.String())
	if err != nil {
		return fmt.Errorf("update word: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vocab.ErrNotFound
	}
	if err := setGroupsTx(ctx, tx, w.ID, w.GroupIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *WordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vocab.ErrNotFound
	}
	return nil
}

func (r *WordRepo) Get(ctx context.Context, id uuid.UUID) (*vocab.Word, error) {
	var row wordRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM words WHERE id = ?`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, vocab.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	w, err := row.toWord()
	if err != nil {
		return nil, err
	}
	if w.GroupIDs, err = r.groupIDs(ctx, id); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WordRepo) List(ctx context.Context) ([]vocab.Word, error) {
	var rows []wordRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM words ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return r.attachGroups(ctx, rows)
}

func (r *WordRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]vocab.Word, error) {
	var rows []wordRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT w.* FROM words w
		 JOIN word_groups wg ON wg.word_id = w.id
		 WHERE wg.group_id = ?
		 ORDER BY w.created_at`, groupID.String())
	if err != nil {
		return nil, fmt.Errorf("list words by group: %w", err)
	}
	return r.attachGroups(ctx, rows)
}

func (r *WordRepo) SetGroups(ctx context.Context, wordID uuid.UUID, groupIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := setGroupsTx(ctx, tx, wordID, groupIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func setGroupsTx(ctx context.Context, tx *sqlx.Tx, wordID uuid.UUID, groupIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM word_groups WHERE word_id = ?`, wordID.String()); err != nil {
		return fmt.Errorf("clear memberships: %w", err)
	}
	for i, gid := range groupIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO word_groups (word_id, group_id, position) VALUES (?, ?, ?)`,
			wordID.String(), gid.String(), i)
		if err != nil {
			return fmt.Errorf("insert membership: %w", err)
		}
	}
	return nil
}

func (r *WordRepo) groupIDs(ctx context.Context, wordID uuid.UUID) ([]uuid.UUID, error) {
	var raw []string
	err := r.db.SelectContext(ctx, &raw,
		`SELECT group_id FROM word_groups WHERE word_id = ? ORDER BY position`, wordID.String())
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse group id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// attachGroups loads all memberships in one query and distributes them.
func (r *WordRepo) attachGroups(ctx context.Context, rows []wordRow) ([]vocab.Word, error) {
	words := make([]vocab.Word, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		w, err := row.toWord()
		if err != nil {
			return nil, err
		}
		index[w.ID] = len(words)
		words = append(words, w)
	}

	type membership struct {
		WordID  string `db:"word_id"`
		GroupID string `db:"group_id"`
	}
	var members []membership
	err := r.db.SelectContext(ctx, &members,
		`SELECT word_id, group_id FROM word_groups ORDER BY word_id, position`)
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}
	for _, m := range members {
		wid, err := uuid.Parse(m.WordID)
		if err != nil {
			continue
		}
		i, ok := index[wid]
		if !ok {
			continue
		}
		gid, err := uuid.Parse(m.GroupID)
		if err != nil {
			return nil, fmt.Errorf("parse group id %q: %w", m.GroupID, err)
		}
		words[i].GroupIDs = append(words[i].GroupIDs, gid)
	}
	return words, nil
}
