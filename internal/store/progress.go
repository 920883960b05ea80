package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
)

type progressRepo struct {
	s *Store
}

func (r *progressRepo) GetProgress(ctx context.Context, userID string) (activity.Snapshot, error) {
	var snap activity.Snapshot
	if userID == "" {
		return snap, nil
	}

	sel := builder().Select("topics_studied", "quizzes_completed", "streak", "total_study_time", "tier", "updated_at").
		From(builder().Table(tableProgress)).
		Where(entsql.EQ(colUserID, userID))
	query, args := sel.Query()

	var (
		topics, quizzes, streak, minutes sql.NullInt64
		tier                             sql.NullString
	)
	err := r.s.db.QueryRowContext(ctx, query, args...).
		Scan(&topics, &quizzes, &streak, &minutes, &tier, &snap.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return activity.Snapshot{}, nil
	}
	if err != nil {
		return activity.Snapshot{}, fmt.Errorf("query progress: %w", err)
	}

	snap.TopicsStudied = overrideInt(topics)
	snap.QuizzesCompleted = overrideInt(quizzes)
	snap.Streak = overrideInt(streak)
	snap.TotalStudyTime = overrideInt(minutes)
	if tier.Valid {
		snap.Tier = activity.Some(difficulty.Tier(tier.String))
	}
	return snap, nil
}

// SaveProgress upserts only the columns the patch sets. updated_at is
// always refreshed.
func (r *progressRepo) SaveProgress(ctx context.Context, userID string, p activity.Patch) error {
	if userID == "" {
		return nil
	}

	cols := []string{colUserID, "updated_at"}
	vals := []any{userID, time.Now().UTC()}
	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	if p.TopicsStudied != nil {
		add("topics_studied", *p.TopicsStudied)
	}
	if p.QuizzesCompleted != nil {
		add("quizzes_completed", *p.QuizzesCompleted)
	}
	if p.Streak != nil {
		add("streak", *p.Streak)
	}
	if p.TotalStudyTime != nil {
		add("total_study_time", *p.TotalStudyTime)
	}
	if p.Tier != nil {
		add("tier", string(*p.Tier))
	}

	ins := builder().Insert(tableProgress).
		Columns(cols...).
		Values(vals...).
		OnConflict(
			entsql.ConflictColumns(colUserID),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				for _, c := range cols[1:] {
					u.SetExcluded(c)
				}
			}),
		)
	if _, err := r.s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func overrideInt(n sql.NullInt64) activity.Override[int] {
	if !n.Valid {
		return activity.Override[int]{}
	}
	return activity.Some(int(n.Int64))
}
