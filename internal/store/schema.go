package store

import "github.com/jmoiron/sqlx"

// createSchema creates all tables if they do not exist. The schema is
// idempotent; Open runs it on every start.
func createSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id          TEXT PRIMARY KEY,
			text        TEXT NOT NULL,
			type        TEXT NOT NULL DEFAULT 'other',
			note        TEXT NOT NULL DEFAULT '',
			translation TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS groups (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			color       TEXT NOT NULL DEFAULT '',
			language    TEXT NOT NULL DEFAULT 'en',
			created_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS word_groups (
			word_id  TEXT NOT NULL REFERENCES words(id) ON DELETE CASCADE,
			group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (word_id, group_id)
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_results (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			word_id   TEXT NOT NULL,
			correct   INTEGER NOT NULL,
			at        TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_results_word ON quiz_results(word_id)`,
		`CREATE TABLE IF NOT EXISTS word_statuses (
			word_id TEXT PRIMARY KEY,
			status  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS daily_progress (
			day_key           TEXT PRIMARY KEY,
			date              TEXT NOT NULL,
			words_learned     INTEGER NOT NULL DEFAULT 0,
			words_reviewed    INTEGER NOT NULL DEFAULT 0,
			quizzes_taken     INTEGER NOT NULL DEFAULT 0,
			correct_answers   INTEGER NOT NULL DEFAULT 0,
			incorrect_answers INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS llm_requests (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			latency_ms    INTEGER NOT NULL,
			success       INTEGER NOT NULL,
			input_tokens  INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			request_body  TEXT NOT NULL,
			response_body TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			created_at    TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
