package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/store"
	"github.com/abhisek/sparklearn/internal/store/storetest"
)

const user = "student-1"

// Wednesday.
var testNow = time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC)

var utcCalendar = activity.Calendar{Location: time.UTC, WeekStart: time.Sunday}

func score(n int) *int { return &n }

func seed(t *testing.T, s *store.Store) {
	t.Helper()
	ctx := t.Context()
	events := []activity.Event{
		{Topic: "Atoms", Type: activity.TypeLearning, Timestamp: testNow.Add(-1 * time.Hour)},
		{Topic: "Atoms", Type: activity.TypeQuiz, Score: score(90), Timestamp: testNow.Add(-2 * time.Hour)},
		{Topic: "Cells", Type: activity.TypeLearning, Timestamp: testNow.AddDate(0, 0, -1)},
		{Topic: "Cells", Type: activity.TypeQuiz, Score: score(61), Timestamp: testNow.AddDate(0, 0, -2)},
		{Topic: "Optics", Type: activity.TypeRevision, Timestamp: testNow.AddDate(0, 0, -2).Add(time.Hour)},
		{Topic: "General", Type: activity.TypeDoubt, Timestamp: testNow.AddDate(0, 0, -10)},
	}
	for i, e := range events {
		e.ID = fmt.Sprintf("e%d", i)
		e.Difficulty = difficulty.Beginner
		require.NoError(t, s.History().SaveHistory(ctx, user, e))
	}
	_, err := s.Bookmarks().SaveBookmark(ctx, user, store.Bookmark{Topic: "Atoms", Difficulty: difficulty.Beginner})
	require.NoError(t, err)
}

func newService(h store.HistoryRepo, p store.ProgressRepo, b store.BookmarkRepo) *Service {
	svc := NewService(h, p, b, utcCalendar, nil)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestLoad(t *testing.T) {
	s := storetest.Open(t)
	seed(t, s)
	svc := newService(s.History(), s.Progress(), s.Bookmarks())

	d, err := svc.Load(t.Context(), user)
	require.NoError(t, err)

	assert.Equal(t, activity.Stats{
		TopicsStudied:     2,
		QuizzesCompleted:  2,
		Streak:            3,
		AverageScore:      76,
		TotalStudyTime:    30,
		WeeklyGoalPercent: 43,
	}, d.Stats)
	require.Len(t, d.Bookmarks, 1)
	require.Len(t, d.Recent, RecentLimit)
	assert.Equal(t, "e0", d.Recent[0].ID)
	for i := 1; i < len(d.Recent); i++ {
		assert.False(t, d.Recent[i].Timestamp.After(d.Recent[i-1].Timestamp), "recent is newest first")
	}
}

func TestLoad_SnapshotOverrides(t *testing.T) {
	s := storetest.Open(t)
	seed(t, s)
	zero, fifty := 0, 50
	require.NoError(t, s.Progress().SaveProgress(t.Context(), user, activity.Patch{Streak: &zero, TopicsStudied: &fifty}))

	stats, err := newService(s.History(), s.Progress(), s.Bookmarks()).Stats(t.Context(), user)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Streak, "a stored zero is an override")
	assert.Equal(t, 50, stats.TopicsStudied)
	assert.Equal(t, 30, stats.TotalStudyTime, "study time derives from the learning count, not the override")
}

func TestLoad_Anonymous(t *testing.T) {
	s := storetest.Open(t)
	seed(t, s)

	d, err := newService(s.History(), s.Progress(), s.Bookmarks()).Load(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, activity.Stats{}, d.Stats)
	assert.NotNil(t, d.Bookmarks)
	assert.NotNil(t, d.Recent)
	assert.Empty(t, d.Recent)
}

type brokenHistory struct{ store.HistoryRepo }

func (brokenHistory) GetHistory(context.Context, string) ([]activity.Event, error) {
	return nil, errors.New("history offline")
}

type brokenProgress struct{ store.ProgressRepo }

func (brokenProgress) GetProgress(context.Context, string) (activity.Snapshot, error) {
	return activity.Snapshot{}, errors.New("progress offline")
}

func TestLoad_DegradesPerSide(t *testing.T) {
	s := storetest.Open(t)
	seed(t, s)
	seven := 7
	require.NoError(t, s.Progress().SaveProgress(t.Context(), user, activity.Patch{Streak: &seven}))

	t.Run("history fails", func(t *testing.T) {
		d, err := newService(brokenHistory{}, s.Progress(), s.Bookmarks()).Load(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, 7, d.Stats.Streak, "snapshot is still applied")
		assert.Equal(t, 0, d.Stats.QuizzesCompleted)
		assert.Len(t, d.Bookmarks, 1)
	})

	t.Run("progress fails", func(t *testing.T) {
		d, err := newService(s.History(), brokenProgress{}, s.Bookmarks()).Load(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, 3, d.Stats.Streak, "streak is derived from history")
		assert.Equal(t, 2, d.Stats.QuizzesCompleted)
	})
}

func TestLoad_CancelledContext(t *testing.T) {
	s := storetest.Open(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := newService(s.History(), s.Progress(), s.Bookmarks()).Load(ctx, user)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHistoryFilter(t *testing.T) {
	s := storetest.Open(t)
	seed(t, s)
	svc := newService(s.History(), s.Progress(), s.Bookmarks())

	quizzes, err := svc.History(t.Context(), user, activity.TypeQuiz)
	require.NoError(t, err)
	assert.Len(t, quizzes, 2)

	all, err := svc.History(t.Context(), user, "")
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestUpdateProgress(t *testing.T) {
	s := storetest.Open(t)
	svc := newService(s.History(), s.Progress(), s.Bookmarks())

	tier := difficulty.Advanced
	five := 5
	snap, err := svc.UpdateProgress(t.Context(), user, activity.Patch{Tier: &tier, TotalStudyTime: &five})
	require.NoError(t, err)
	assert.Equal(t, activity.Some(difficulty.Advanced), snap.Tier)
	assert.Equal(t, activity.Some(5), snap.TotalStudyTime)
	assert.False(t, snap.Streak.Set)

	_, err = svc.UpdateProgress(t.Context(), "", activity.Patch{Tier: &tier})
	assert.ErrorIs(t, err, store.ErrNoUser)
}
