// Package study wraps tutor generations with activity recording, and
// manages bookmarks and notes.
package study

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/logger"
	"github.com/abhisek/sparklearn/internal/store"
	"github.com/abhisek/sparklearn/internal/tutor"
)

// DefaultDoubtTopic labels doubts asked without a topic.
const DefaultDoubtTopic = "General"

// Tutor is the subset of tutor.Service used here.
type Tutor interface {
	Explain(ctx context.Context, topic string, tier difficulty.Tier) (*tutor.Explanation, error)
	RevisionNotes(ctx context.Context, topic string, tier difficulty.Tier) (*tutor.RevisionNotes, error)
	AnswerDoubt(ctx context.Context, question, topic string, history []tutor.ChatMessage) (*tutor.Answer, error)
	WeeklyPlan(ctx context.Context, subjects []string, tier difficulty.Tier) (*tutor.WeeklyPlan, error)
}

// Service runs study activities for users.
type Service struct {
	tutor     Tutor
	history   store.HistoryRepo
	bookmarks store.BookmarkRepo
	notes     store.NoteRepo
	log       *logger.Logger
	now       func() time.Time
}

// NewService creates a study service. log may be nil.
func NewService(t Tutor, history store.HistoryRepo, bookmarks store.BookmarkRepo, notes store.NoteRepo, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		tutor:     t,
		history:   history,
		bookmarks: bookmarks,
		notes:     notes,
		log:       log,
		now:       time.Now,
	}
}

// Learn explains topic and logs a learning event.
func (s *Service) Learn(ctx context.Context, userID, topic string, tier difficulty.Tier) (*tutor.Explanation, error) {
	exp, err := s.tutor.Explain(ctx, topic, tier)
	if err != nil {
		return nil, err
	}
	if !exp.Fallback {
		s.record(ctx, userID, activity.TypeLearning, exp.Topic, exp.Difficulty)
	}
	return exp, nil
}

// Revise builds revision notes and logs a revision event.
func (s *Service) Revise(ctx context.Context, userID, topic string, tier difficulty.Tier) (*tutor.RevisionNotes, error) {
	notes, err := s.tutor.RevisionNotes(ctx, topic, tier)
	if err != nil {
		return nil, err
	}
	if !notes.Fallback {
		s.record(ctx, userID, activity.TypeRevision, notes.Topic, notes.Difficulty)
	}
	return notes, nil
}

// AskDoubt answers a question and logs a doubt event.
func (s *Service) AskDoubt(ctx context.Context, userID, question, topic string, history []tutor.ChatMessage) (*tutor.Answer, error) {
	ans, err := s.tutor.AnswerDoubt(ctx, question, topic, history)
	if err != nil {
		return nil, err
	}
	if !ans.Fallback {
		label := strings.TrimSpace(topic)
		if label == "" {
			label = DefaultDoubtTopic
		}
		s.record(ctx, userID, activity.TypeDoubt, label, difficulty.Intermediate)
	}
	return ans, nil
}

// PlanWeek builds a weekly plan. Plans are not logged as activity.
func (s *Service) PlanWeek(ctx context.Context, subjects []string, tier difficulty.Tier) (*tutor.WeeklyPlan, error) {
	return s.tutor.WeeklyPlan(ctx, subjects, tier)
}

// record appends an activity event. A failed write is logged; the
// generated content is still returned to the student.
func (s *Service) record(ctx context.Context, userID string, typ activity.Type, topic string, tier difficulty.Tier) {
	err := s.history.SaveHistory(ctx, userID, activity.Event{
		ID:         uuid.NewString(),
		Topic:      topic,
		Type:       typ,
		Difficulty: tier,
		Timestamp:  s.now(),
	})
	if err != nil {
		s.log.Error("failed to record activity", "user", userID, "type", typ, "topic", topic, "error", err)
	}
}

// Bookmarks lists a user's saved topics.
func (s *Service) Bookmarks(ctx context.Context, userID string) ([]store.Bookmark, error) {
	return s.bookmarks.ListBookmarks(ctx, userID)
}

// SaveBookmark saves topic at tier.
func (s *Service) SaveBookmark(ctx context.Context, userID, topic string, tier difficulty.Tier) (store.Bookmark, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return store.Bookmark{}, fmt.Errorf("%w: empty topic", tutor.ErrInvalidInput)
	}
	if !tier.Valid() {
		tier = difficulty.Beginner
	}
	return s.bookmarks.SaveBookmark(ctx, userID, store.Bookmark{Topic: topic, Difficulty: tier})
}

// RemoveBookmark deletes a bookmark by ID.
func (s *Service) RemoveBookmark(ctx context.Context, userID, id string) error {
	return s.bookmarks.DeleteBookmark(ctx, userID, id)
}

// Notes lists a user's topic notes.
func (s *Service) Notes(ctx context.Context, userID string) ([]store.Note, error) {
	return s.notes.ListNotes(ctx, userID)
}

// SaveNote replaces the note for topic.
func (s *Service) SaveNote(ctx context.Context, userID, topic, content string) (store.Note, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return store.Note{}, fmt.Errorf("%w: empty topic", tutor.ErrInvalidInput)
	}
	return s.notes.SaveNote(ctx, userID, store.Note{Topic: topic, Content: content})
}

// RemoveNote deletes a note by ID.
func (s *Service) RemoveNote(ctx context.Context, userID, id string) error {
	return s.notes.DeleteNote(ctx, userID, id)
}
