package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying handle for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Words returns the word repository.
func (s *Store) Words() *WordRepo {
	return &WordRepo{db: s.db}
}

// Groups returns the group repository.
func (s *Store) Groups() *GroupRepo {
	return &GroupRepo{db: s.db}
}

// Results returns the quiz result log.
func (s *Store) Results() *ResultRepo {
	return &ResultRepo{db: s.db}
}

// Statuses returns the word status cache.
func (s *Store) Statuses() *StatusRepo {
	return &StatusRepo{db: s.db}
}

// Progress returns the daily progress ledger.
func (s *Store) Progress() *ProgressRepo {
	return &ProgressRepo{db: s.db}
}

// KV returns the key-value repository (flags, cached sentences).
func (s *Store) KV() *KVRepo {
	return &KVRepo{db: s.db}
}

// LLMLog returns the LLM request log.
func (s *Store) LLMLog() *LLMLogRepo {
	return &LLMLogRepo{db: s.db}
}

// Learner returns the per-word learner data purger used by word deletion.
func (s *Store) Learner() *LearnerRepo {
	return &LearnerRepo{db: s.db}
}

// Reset deletes all learner and registry data. Schema stays in place.
func (s *Store) Reset(ctx context.Context) error {
	tables := []string{
		"llm_requests",
		"kv",
		"daily_progress",
		"word_statuses",
		"quiz_results",
		"word_groups",
		"words",
		"groups",
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
			return fmt.Errorf("clear %s: %w", t, err)
		}
	}
	return tx.Commit()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. WORDLING_DB environment variable
// 2. $XDG_DATA_HOME/wordling/wordling.db
// 3. ~/.local/share/wordling/wordling.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("WORDLING_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "wordling", "wordling.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
