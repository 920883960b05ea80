// Package quiz runs the practice loop: generate questions, score a
// submission, adjust the tier and record the attempt.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/logger"
	"github.com/abhisek/sparklearn/internal/store"
	"github.com/abhisek/sparklearn/internal/tutor"
)

// QuestionGenerator produces quiz questions.
type QuestionGenerator interface {
	Questions(ctx context.Context, topic string, tier difficulty.Tier, count int) (*tutor.QuestionSet, error)
}

// Repos groups the stores a quiz writes to.
type Repos struct {
	History  store.HistoryRepo
	Attempts store.QuizAttemptRepo
	Progress store.ProgressRepo
}

// Service runs quizzes for users.
type Service struct {
	gen   QuestionGenerator
	repos Repos
	log   *logger.Logger
	now   func() time.Time
}

// NewService creates a quiz service. log may be nil.
func NewService(gen QuestionGenerator, repos Repos, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{gen: gen, repos: repos, log: log, now: time.Now}
}

// Generate creates questions for topic. A nil tier uses the tier stored
// in the user's progress, or beginner.
func (s *Service) Generate(ctx context.Context, userID, topic string, tier *difficulty.Tier, count int) (*tutor.QuestionSet, error) {
	t := difficulty.Beginner
	if tier != nil {
		t = *tier
	} else if snap, err := s.repos.Progress.GetProgress(ctx, userID); err != nil {
		s.log.Warn("progress unavailable, quizzing at beginner", "user", userID, "error", err)
	} else if stored := snap.Tier.Or(difficulty.Beginner); stored.Valid() {
		t = stored
	}
	return s.gen.Questions(ctx, topic, t, count)
}

// Submission is a completed quiz. Tier is the tier the quiz was taken at.
type Submission struct {
	Topic     string           `json:"topic"`
	Tier      difficulty.Tier  `json:"difficulty"`
	Questions []tutor.Question `json:"questions"`
	Answers   map[int]int      `json:"answers"`
}

// Outcome is what a student sees after submitting.
type Outcome struct {
	ID         string                `json:"id"`
	Result     Result                `json:"result"`
	Adjustment difficulty.Adjustment `json:"adjustment"`

	// Persisted is false when any write failed. The outcome is still valid.
	Persisted bool `json:"persisted"`
}

// Submit scores a quiz, adjusts the tier and records the attempt.
// Storage failures are logged and reported through Outcome.Persisted.
func (s *Service) Submit(ctx context.Context, userID string, sub Submission) (*Outcome, error) {
	topic := strings.TrimSpace(sub.Topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: empty topic", tutor.ErrInvalidInput)
	}
	result, err := Score(sub.Questions, sub.Answers)
	if err != nil {
		return nil, err
	}
	tier := sub.Tier
	if !tier.Valid() {
		tier = difficulty.Beginner
	}

	adj := difficulty.Adjust(result.Percent, tier)
	out := &Outcome{
		ID:         uuid.NewString(),
		Result:     result,
		Adjustment: adj,
		Persisted:  true,
	}
	log := s.log.With("user", userID, "quiz", out.ID)
	now := s.now()

	// The history event and the attempt share an ID and are independent.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		score := result.Percent
		return s.repos.History.SaveHistory(gctx, userID, activity.Event{
			ID:         out.ID,
			Topic:      topic,
			Type:       activity.TypeQuiz,
			Difficulty: tier,
			Score:      &score,
			Timestamp:  now,
		})
	})
	g.Go(func() error {
		return s.repos.Attempts.SaveQuizAttempt(gctx, userID, store.QuizAttempt{
			ID:             out.ID,
			Topic:          topic,
			SubjectID:      store.Slug(topic),
			Difficulty:     tier,
			Score:          result.Percent,
			TotalQuestions: result.Total,
			CorrectAnswers: result.Correct,
			QuizDate:       now,
		})
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to record quiz", "error", err)
		out.Persisted = false
	}

	if err := s.updateProgress(ctx, userID, adj.NewTier); err != nil {
		log.Error("failed to update progress", "error", err)
		out.Persisted = false
	}

	log.Info("quiz submitted",
		"topic", topic,
		"score", result.Percent,
		"from", tier,
		"to", adj.NewTier,
	)
	return out, nil
}

// updateProgress stores the new tier. A quizzes override only moves when
// one is already set; otherwise the count is derived from the log, which
// already holds the new event.
func (s *Service) updateProgress(ctx context.Context, userID string, tier difficulty.Tier) error {
	snap, err := s.repos.Progress.GetProgress(ctx, userID)
	if err != nil {
		return fmt.Errorf("read progress: %w", err)
	}

	patch := activity.Patch{Tier: &tier}
	if snap.QuizzesCompleted.Set {
		n := snap.QuizzesCompleted.Value + 1
		patch.QuizzesCompleted = &n
	}
	return s.repos.Progress.SaveProgress(ctx, userID, patch)
}

// Attempts lists a user's submitted quizzes, newest first.
func (s *Service) Attempts(ctx context.Context, userID string, limit int) ([]store.QuizAttempt, error) {
	return s.repos.Attempts.ListQuizAttempts(ctx, userID, limit)
}
