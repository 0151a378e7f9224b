package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// KVRepo is a small key-value surface for ad hoc state: boolean flags
// (favorites) and cached generated sentences.
type KVRepo struct {
	db *sqlx.DB
}

// Set writes a raw string value.
func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// Get reads a raw string value; absent keys return ("", false, nil).
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// SetFlag writes a boolean flag.
func (r *KVRepo) SetFlag(ctx context.Context, key string, value bool) error {
	v := "0"
	if value {
		v = "1"
	}
	return r.Set(ctx, key, v)
}

// GetFlag reads a boolean flag; absent keys read as false.
func (r *KVRepo) GetFlag(ctx context.Context, key string) (bool, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return ok && v == "1", nil
}

// SetJSON marshals a value and stores it under key.
func (r *KVRepo) SetJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv marshal %q: %w", key, err)
	}
	return r.Set(ctx, key, string(data))
}

// GetJSON unmarshals the value at key into out. Returns false when absent.
func (r *KVRepo) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("kv unmarshal %q: %w", key, err)
	}
	return true, nil
}

// SentencesKey is the kv key holding cached example sentences for a word.
func SentencesKey(wordID uuid.UUID) string {
	return "sentences_" + wordID.String()
}
