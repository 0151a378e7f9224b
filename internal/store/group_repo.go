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

// GroupRepo persists word groups.
type GroupRepo struct {
	db *sqlx.DB
}

type groupRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Color       string `db:"color"`
	Language    string `db:"language"`
	CreatedAt   string `db:"created_at"`
}

func (r groupRow) toGroup() (vocab.Group, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return vocab.Group{}, fmt.Errorf("parse group id %q: %w", r.ID, err)
	}
	createdAt, err := time.Parse(timeFormat, r.CreatedAt)
	if err != nil {
		return vocab.Group{}, fmt.Errorf("parse created_at %q: %w", r.CreatedAt, err)
	}
	return vocab.Group{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		Language:    r.Language,
		CreatedAt:   createdAt,
	}, nil
}

func (r *GroupRepo) Insert(ctx context.Context, g *vocab.Group) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (id, name, description, color, language, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID.String(), g.Name, g.Description, g.Color, g.Language,
		g.CreatedAt.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

func (r *GroupRepo) Update(ctx context.Context, g *vocab.Group) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE groups SET name = ?, description = ?, color = ?, language = ? WHERE id = ?`,
		g.Name, g.Description, g.Color, g.Language, g.ID.String())
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vocab.ErrNotFound
	}
	return nil
}

func (r *GroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vocab.ErrNotFound
	}
	return nil
}

func (r *GroupRepo) Get(ctx context.Context, id uuid.UUID) (*vocab.Group, error) {
	var row groupRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM groups WHERE id = ?`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, vocab.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	g, err := row.toGroup()
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepo) GetByName(ctx context.Context, name string) (*vocab.Group, error) {
	var row groupRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM groups WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, vocab.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group by name: %w", err)
	}
	g, err := row.toGroup()
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepo) List(ctx context.Context) ([]vocab.Group, error) {
	var rows []groupRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM groups ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	groups := make([]vocab.Group, 0, len(rows))
	for _, row := range rows {
		g, err := row.toGroup()
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
