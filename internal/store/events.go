package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) (LLMUsageSummary, error) {
	summary := LLMUsageSummary{ByPurpose: make(map[string]int)}

	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0)
		 FROM llm_request_events`)
	if err := row.Scan(&summary.TotalRequests, &summary.FailedCount,
		&summary.InputTokens, &summary.OutputTokens); err != nil {
		return summary, fmt.Errorf("llm usage totals: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*) FROM llm_request_events GROUP BY purpose`)
	if err != nil {
		return summary, fmt.Errorf("llm usage by purpose: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			purpose string
			count   int
		)
		if err := rows.Scan(&purpose, &count); err != nil {
			return summary, fmt.Errorf("llm usage by purpose: %w", err)
		}
		summary.ByPurpose[purpose] = count
	}
	if err := rows.Err(); err != nil {
		return summary, fmt.Errorf("llm usage by purpose: %w", err)
	}
	return summary, nil
}
