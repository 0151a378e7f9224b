package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wordling/wordling/internal/llm"
)

// LLMLogRepo persists the LLM request audit log.
type LLMLogRepo struct {
	db *sqlx.DB
}

// LLMRequest is one logged request row.
type LLMRequest struct {
	ID           int64  `db:"id"`
	Provider     string `db:"provider"`
	Model        string `db:"model"`
	Purpose      string `db:"purpose"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	RequestBody  string `db:"request_body"`
	ResponseBody string `db:"response_body"`
	ErrorMessage string `db:"error_message"`
	CreatedAt    string `db:"created_at"`
}

// AppendRequest implements llm.RequestLog.
func (r *LLMLogRepo) AppendRequest(ctx context.Context, rec llm.RequestRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		   (provider, model, purpose, latency_ms, success, input_tokens, output_tokens,
		    request_body, response_body, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.LatencyMs, rec.Success,
		rec.InputTokens, rec.OutputTokens, rec.RequestBody, rec.ResponseBody,
		rec.ErrorMessage, time.Now().UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// Recent returns the most recent n logged requests, newest first.
func (r *LLMLogRepo) Recent(ctx context.Context, n int) ([]LLMRequest, error) {
	var rows []LLMRequest
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM llm_requests ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("load llm requests: %w", err)
	}
	return rows, nil
}

// Get loads one logged request by id. Returns nil when the row is absent.
func (r *LLMLogRepo) Get(ctx context.Context, id int64) (*LLMRequest, error) {
	var row LLMRequest
	err := r.db.GetContext(ctx, &row, `SELECT * FROM llm_requests WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load llm request %d: %w", id, err)
	}
	return &row, nil
}

// ModelUsage aggregates token counts per model.
type ModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// UsageByModel sums token counts grouped by model, heaviest first.
func (r *LLMLogRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var rows []ModelUsage
	err := r.db.SelectContext(ctx, &rows,
		`SELECT model,
		        COUNT(*) AS calls,
		        COALESCE(SUM(input_tokens), 0) AS input_tokens,
		        COALESCE(SUM(output_tokens), 0) AS output_tokens
		 FROM llm_requests
		 GROUP BY model
		 ORDER BY input_tokens + output_tokens DESC`)
	if err != nil {
		return nil, fmt.Errorf("sum llm usage by model: %w", err)
	}
	return rows, nil
}

// TotalUsage sums token counts across all logged requests.
func (r *LLMLogRepo) TotalUsage(ctx context.Context) (input, output int, err error) {
	row := struct {
		Input  int `db:"input"`
		Output int `db:"output"`
	}{}
	err = r.db.GetContext(ctx, &row,
		`SELECT COALESCE(SUM(input_tokens), 0) AS input,
		        COALESCE(SUM(output_tokens), 0) AS output
		 FROM llm_requests`)
	if err != nil {
		return 0, 0, fmt.Errorf("sum llm usage: %w", err)
	}
	return row.Input, row.Output, nil
}
