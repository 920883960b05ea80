package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/llm"
	"github.com/abhisek/sparklearn/internal/store"
	"github.com/abhisek/sparklearn/internal/store/storetest"
	"github.com/abhisek/sparklearn/internal/tutor"
)

const user = "student-1"

var fixedNow = time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC)

func repos(s *store.Store) Repos {
	return Repos{History: s.History(), Attempts: s.QuizAttempts(), Progress: s.Progress()}
}

func newTestService(t *testing.T, gen QuestionGenerator, r Repos) *Service {
	t.Helper()
	svc := NewService(gen, r, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestSubmit_PromotesAndRecords(t *testing.T) {
	s := storetest.Open(t)
	svc := newTestService(t, nil, repos(s))
	ctx := t.Context()

	out, err := svc.Submit(ctx, user, Submission{
		Topic:     " Linear Algebra ",
		Tier:      difficulty.Beginner,
		Questions: questions(0, 1, 2, 3, 0),
		Answers:   map[int]int{1: 0, 2: 1, 3: 2, 4: 3, 5: 1},
	})
	require.NoError(t, err)
	assert.True(t, out.Persisted)
	assert.Equal(t, Result{Correct: 4, Total: 5, Percent: 80}, out.Result)
	assert.Equal(t, difficulty.Intermediate, out.Adjustment.NewTier)
	assert.True(t, out.Adjustment.Changed)

	history, err := s.History().GetHistory(ctx, user)
	require.NoError(t, err)
	require.Len(t, history, 1)
	ev := history[0]
	assert.Equal(t, out.ID, ev.ID)
	assert.Equal(t, "Linear Algebra", ev.Topic)
	assert.Equal(t, activity.TypeQuiz, ev.Type)
	assert.Equal(t, difficulty.Beginner, ev.Difficulty, "events carry the tier the quiz was taken at")
	require.NotNil(t, ev.Score)
	assert.Equal(t, 80, *ev.Score)

	attempts, err := svc.Attempts(ctx, user, 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, out.ID, attempts[0].ID)
	assert.Equal(t, "linear-algebra", attempts[0].SubjectID)
	assert.Equal(t, 4, attempts[0].CorrectAnswers)

	snap, err := s.Progress().GetProgress(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, activity.Some(difficulty.Intermediate), snap.Tier)
	assert.False(t, snap.QuizzesCompleted.Set, "derived count is left alone")

	stats := activity.DeriveStats(history, snap, fixedNow)
	assert.Equal(t, 1, stats.QuizzesCompleted)
	assert.Equal(t, 80, stats.AverageScore)
}

func TestSubmit_BumpsExistingOverride(t *testing.T) {
	s := storetest.Open(t)
	ctx := t.Context()
	ten := 10
	require.NoError(t, s.Progress().SaveProgress(ctx, user, activity.Patch{QuizzesCompleted: &ten}))

	svc := newTestService(t, nil, repos(s))
	out, err := svc.Submit(ctx, user, Submission{
		Topic:     "Sets",
		Tier:      difficulty.Intermediate,
		Questions: questions(0, 0, 0),
		Answers:   map[int]int{1: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, difficulty.Beginner, out.Adjustment.NewTier)

	snap, err := s.Progress().GetProgress(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, activity.Some(11), snap.QuizzesCompleted)
	assert.Equal(t, activity.Some(difficulty.Beginner), snap.Tier)
}

func TestSubmit_Validation(t *testing.T) {
	svc := newTestService(t, nil, repos(storetest.Open(t)))

	_, err := svc.Submit(t.Context(), user, Submission{Topic: " ", Questions: questions(0)})
	assert.ErrorIs(t, err, tutor.ErrInvalidInput)

	_, err = svc.Submit(t.Context(), user, Submission{Topic: "Sets"})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestSubmit_AnonymousStillScores(t *testing.T) {
	s := storetest.Open(t)
	svc := newTestService(t, nil, repos(s))

	out, err := svc.Submit(t.Context(), "", Submission{
		Topic:     "Sets",
		Tier:      difficulty.Advanced,
		Questions: questions(0),
		Answers:   map[int]int{1: 0},
	})
	require.NoError(t, err)
	assert.True(t, out.Persisted, "anonymous writes are skipped, not failed")
	assert.Equal(t, difficulty.Advanced, out.Adjustment.NewTier)
	assert.False(t, out.Adjustment.Changed)
}

type failingHistory struct{ store.HistoryRepo }

func (failingHistory) SaveHistory(context.Context, string, activity.Event) error {
	return errors.New("disk full")
}

type failingProgress struct{ store.ProgressRepo }

func (failingProgress) GetProgress(context.Context, string) (activity.Snapshot, error) {
	return activity.Snapshot{}, errors.New("locked")
}

func TestSubmit_PersistenceFailureDegrades(t *testing.T) {
	s := storetest.Open(t)

	t.Run("history write fails", func(t *testing.T) {
		r := repos(s)
		r.History = failingHistory{r.History}
		out, err := newTestService(t, nil, r).Submit(t.Context(), user, Submission{
			Topic: "Sets", Tier: difficulty.Beginner, Questions: questions(0), Answers: map[int]int{1: 0},
		})
		require.NoError(t, err)
		assert.False(t, out.Persisted)
		assert.Equal(t, difficulty.Intermediate, out.Adjustment.NewTier)
	})

	t.Run("progress read fails", func(t *testing.T) {
		r := repos(s)
		r.Progress = failingProgress{r.Progress}
		out, err := newTestService(t, nil, r).Submit(t.Context(), user, Submission{
			Topic: "Sets", Tier: difficulty.Beginner, Questions: questions(0), Answers: map[int]int{1: 0},
		})
		require.NoError(t, err)
		assert.False(t, out.Persisted)
	})
}

func TestGenerate_DefaultsTierFromProgress(t *testing.T) {
	s := storetest.Open(t)
	ctx := t.Context()
	mock := llm.NewMockProvider()
	mock.Fallback = func(llm.Request) llm.MockResponse {
		return llm.MockJSON(`{"mcqs":[{"id":1,"question":"Q","options":["a","b","c","d"],"correct":2,"explanation":"e"}]}`)
	}
	svc := newTestService(t, tutor.NewService(mock, tutor.DefaultConfig(), nil), repos(s))

	set, err := svc.Generate(ctx, user, "Sets", nil, 1)
	require.NoError(t, err)
	assert.Equal(t, difficulty.Beginner, set.Difficulty)

	adv := difficulty.Advanced
	require.NoError(t, s.Progress().SaveProgress(ctx, user, activity.Patch{Tier: &adv}))
	set, err = svc.Generate(ctx, user, "Sets", nil, 1)
	require.NoError(t, err)
	assert.Equal(t, difficulty.Advanced, set.Difficulty)

	mid := difficulty.Intermediate
	set, err = svc.Generate(ctx, user, "Sets", &mid, 1)
	require.NoError(t, err)
	assert.Equal(t, difficulty.Intermediate, set.Difficulty, "explicit tier wins")
}
