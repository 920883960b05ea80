package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
)

type historyRepo struct {
	s *Store
}

func (r *historyRepo) SaveHistory(ctx context.Context, userID string, e activity.Event) error {
	if userID == "" {
		return nil
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	ins := builder().Insert(tableActivityEvents).
		Columns(colUserID, "id", "topic", "type", "difficulty", "score", "timestamp").
		Values(userID, e.ID, e.Topic, string(e.Type), string(e.Difficulty), nullInt(e.Score), e.Timestamp.UTC())
	if _, err := r.s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save history event: %w", err)
	}
	return nil
}

func (r *historyRepo) GetHistory(ctx context.Context, userID string) ([]activity.Event, error) {
	if userID == "" {
		return nil, nil
	}

	sel := builder().Select("id", "topic", "type", "difficulty", "score", "timestamp").
		From(builder().Table(tableActivityEvents)).
		Where(entsql.EQ(colUserID, userID)).
		OrderBy(entsql.Desc("timestamp"))
	rows, err := r.s.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var events []activity.Event
	for rows.Next() {
		var (
			e          activity.Event
			typ, level string
			score      sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Topic, &typ, &level, &score, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history event: %w", err)
		}
		e.Type = activity.Type(typ)
		e.Difficulty = difficulty.Tier(level)
		if score.Valid {
			v := int(score.Int64)
			e.Score = &v
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	activity.SortNewestFirst(events)
	return events, nil
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}
