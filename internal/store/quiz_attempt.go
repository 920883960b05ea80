package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sparklearn/internal/difficulty"
)

type quizAttemptRepo struct {
	s *Store
}

func (r *quizAttemptRepo) SaveQuizAttempt(ctx context.Context, userID string, a QuizAttempt) error {
	if userID == "" {
		return nil
	}
	if a.QuizDate.IsZero() {
		a.QuizDate = time.Now()
	}
	if a.SubjectID == "" {
		a.SubjectID = Slug(a.Topic)
	}

	ins := builder().Insert(tableQuizAttempts).
		Columns(colUserID, "id", "topic", "subject_id", "difficulty", "score", "total_questions", "correct_answers", "quiz_date").
		Values(userID, a.ID, a.Topic, a.SubjectID, string(a.Difficulty), a.Score, a.TotalQuestions, a.CorrectAnswers, a.QuizDate.UTC())
	if _, err := r.s.exec(ctx, ins); err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *quizAttemptRepo) ListQuizAttempts(ctx context.Context, userID string, limit int) ([]QuizAttempt, error) {
	if userID == "" {
		return nil, nil
	}

	sel := builder().Select("id", "topic", "subject_id", "difficulty", "score", "total_questions", "correct_answers", "quiz_date").
		From(builder().Table(tableQuizAttempts)).
		Where(entsql.EQ(colUserID, userID)).
		OrderBy(entsql.Desc("quiz_date"))
	if limit > 0 {
		sel.Limit(limit)
	}
	rows, err := r.s.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	defer rows.Close()

	var out []QuizAttempt
	for rows.Next() {
		var (
			a     QuizAttempt
			level string
		)
		if err := rows.Scan(&a.ID, &a.Topic, &a.SubjectID, &level, &a.Score, &a.TotalQuestions, &a.CorrectAnswers, &a.QuizDate); err != nil {
			return nil, fmt.Errorf("scan quiz attempt: %w", err)
		}
		a.Difficulty = difficulty.Tier(level)
		out = append(out, a)
	}
	return out, rows.Err()
}
