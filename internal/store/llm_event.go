package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo.
type eventRepo struct {
	s *Store
}

var llmEventColumns = []string{
	"id", "timestamp", "provider", "model", "purpose", "input_tokens", "output_tokens",
	"latency_ms", "success", "error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	ins := builder().Insert(tableLLMEvents).
		Columns(llmEventColumns[1:]...).
		Values(
			time.Now().UTC(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		)
	if _, err := r.s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	sel := builder().Select(llmEventColumns...).
		From(builder().Table(tableLLMEvents)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	rows, err := r.s.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ev)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int) (*LLMRequestEvent, error) {
	sel := builder().Select(llmEventColumns...).
		From(builder().Table(tableLLMEvents)).
		Where(entsql.EQ("id", id))
	query, args := sel.Query()
	ev, err := scanLLMEvent(r.s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("LLM request event %d: %w", id, ErrNotFound)
	}
	return ev, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(sc scanner) (*LLMRequestEvent, error) {
	var ev LLMRequestEvent
	err := sc.Scan(
		&ev.ID, &ev.Timestamp, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success,
		&ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan LLM request event: %w", err)
	}
	return &ev, nil
}
