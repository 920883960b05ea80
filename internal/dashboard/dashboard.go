// Package dashboard assembles a user's statistics from the activity log
// and progress snapshot.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/logger"
	"github.com/abhisek/sparklearn/internal/store"
)

// RecentLimit is how many events the dashboard shows.
const RecentLimit = 5

// Dashboard is everything the home screen shows.
type Dashboard struct {
	Stats     activity.Stats   `json:"stats"`
	Bookmarks []store.Bookmark `json:"bookmarks"`
	Recent    []activity.Event `json:"recentActivity"`
}

// Service loads dashboards.
type Service struct {
	history   store.HistoryRepo
	progress  store.ProgressRepo
	bookmarks store.BookmarkRepo
	cal       activity.Calendar
	log       *logger.Logger
	now       func() time.Time
}

// NewService creates a dashboard service. log may be nil.
func NewService(history store.HistoryRepo, progress store.ProgressRepo, bookmarks store.BookmarkRepo, cal activity.Calendar, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		history:   history,
		progress:  progress,
		bookmarks: bookmarks,
		cal:       cal,
		log:       log,
		now:       time.Now,
	}
}

// Load fetches history, progress and bookmarks concurrently. A failed
// fetch degrades that part to empty; Load itself only fails if ctx ends.
func (s *Service) Load(ctx context.Context, userID string) (*Dashboard, error) {
	var (
		events    []activity.Event
		snap      activity.Snapshot
		bookmarks []store.Bookmark
	)
	log := s.log.With("user", userID)

	// Each fetch swallows its own error so one failure never cancels
	// the others.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		if events, err = s.history.GetHistory(ctx, userID); err != nil {
			log.Warn("history unavailable", "error", err)
			events = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap, err = s.progress.GetProgress(ctx, userID); err != nil {
			log.Warn("progress unavailable", "error", err)
			snap = activity.Snapshot{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bookmarks, err = s.bookmarks.ListBookmarks(ctx, userID); err != nil {
			log.Warn("bookmarks unavailable", "error", err)
			bookmarks = nil
		}
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	activity.SortNewestFirst(events)
	return &Dashboard{
		Stats:     s.cal.DeriveStats(events, snap, s.now()),
		Bookmarks: nonNil(bookmarks),
		Recent:    nonNil(events[:min(len(events), RecentLimit)]),
	}, nil
}

// Stats returns only the derived statistics.
func (s *Service) Stats(ctx context.Context, userID string) (activity.Stats, error) {
	d, err := s.Load(ctx, userID)
	if err != nil {
		return activity.Stats{}, err
	}
	return d.Stats, nil
}

// History returns the activity log, optionally filtered by type.
func (s *Service) History(ctx context.Context, userID string, typ activity.Type) ([]activity.Event, error) {
	events, err := s.history.GetHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if typ != "" {
		events = activity.FilterType(events, typ)
	}
	return nonNil(events), nil
}

// Progress returns the stored snapshot.
func (s *Service) Progress(ctx context.Context, userID string) (activity.Snapshot, error) {
	return s.progress.GetProgress(ctx, userID)
}

// UpdateProgress merges p into the stored snapshot.
func (s *Service) UpdateProgress(ctx context.Context, userID string, p activity.Patch) (activity.Snapshot, error) {
	if userID == "" {
		return activity.Snapshot{}, store.ErrNoUser
	}
	if !p.Empty() {
		if err := s.progress.SaveProgress(ctx, userID, p); err != nil {
			return activity.Snapshot{}, err
		}
	}
	return s.progress.GetProgress(ctx, userID)
}

// nonNil keeps JSON output as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
