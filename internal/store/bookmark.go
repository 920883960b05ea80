package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sparklearn/internal/difficulty"
)

type bookmarkRepo struct {
	s *Store
}

func (r *bookmarkRepo) SaveBookmark(ctx context.Context, userID string, b Bookmark) (Bookmark, error) {
	if userID == "" {
		return Bookmark{}, ErrNoUser
	}
	if b.ID == "" {
		b.ID = Slug(b.Topic)
	}
	b.SavedAt = time.Now().UTC()

	ins := builder().Insert(tableBookmarks).
		Columns(colUserID, "id", "topic", "difficulty", "saved_at").
		Values(userID, b.ID, b.Topic, string(b.Difficulty), b.SavedAt).
		OnConflict(entsql.ConflictColumns(colUserID, "id"), entsql.ResolveWithNewValues())
	if _, err := r.s.exec(ctx, ins); err != nil {
		return Bookmark{}, fmt.Errorf("save bookmark: %w", err)
	}
	return b, nil
}

func (r *bookmarkRepo) ListBookmarks(ctx context.Context, userID string) ([]Bookmark, error) {
	if userID == "" {
		return nil, nil
	}

	sel := builder().Select("id", "topic", "difficulty", "saved_at").
		From(builder().Table(tableBookmarks)).
		Where(entsql.EQ(colUserID, userID)).
		OrderBy(entsql.Desc("saved_at"))
	rows, err := r.s.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		var (
			b     Bookmark
			level string
		)
		if err := rows.Scan(&b.ID, &b.Topic, &level, &b.SavedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		b.Difficulty = difficulty.Tier(level)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bookmarkRepo) DeleteBookmark(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrNoUser
	}
	del := builder().Delete(tableBookmarks).
		Where(entsql.And(entsql.EQ(colUserID, userID), entsql.EQ("id", id)))
	if _, err := r.s.exec(ctx, del); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}
