package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type noteRepo struct {
	s *Store
}

// SaveNote overwrites the note for the topic.
func (r *noteRepo) SaveNote(ctx context.Context, userID string, n Note) (Note, error) {
	if userID == "" {
		return Note{}, ErrNoUser
	}
	if n.ID == "" {
		n.ID = Slug(n.Topic)
	}
	n.SavedAt = time.Now().UTC()

	ins := builder().Insert(tableNotes).
		Columns(colUserID, "id", "topic", "content", "saved_at").
		Values(userID, n.ID, n.Topic, n.Content, n.SavedAt).
		OnConflict(entsql.ConflictColumns(colUserID, "id"), entsql.ResolveWithNewValues())
	if _, err := r.s.exec(ctx, ins); err != nil {
		return Note{}, fmt.Errorf("save note: %w", err)
	}
	return n, nil
}

func (r *noteRepo) ListNotes(ctx context.Context, userID string) ([]Note, error) {
	if userID == "" {
		return nil, nil
	}

	sel := builder().Select("id", "topic", "content", "saved_at").
		From(builder().Table(tableNotes)).
		Where(entsql.EQ(colUserID, userID)).
		OrderBy(entsql.Desc("saved_at"))
	rows, err := r.s.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Topic, &n.Content, &n.SavedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *noteRepo) DeleteNote(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrNoUser
	}
	del := builder().Delete(tableNotes).
		Where(entsql.And(entsql.EQ(colUserID, userID), entsql.EQ("id", id)))
	if _, err := r.s.exec(ctx, del); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
