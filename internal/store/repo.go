package store

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
)

// ErrNoUser is returned by writes that require an authenticated user.
var ErrNoUser = errors.New("no authenticated user")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Reads with an empty userID return empty results. History, attempt and
// progress writes with an empty userID are skipped.

// HistoryRepo is the append-only activity log.
type HistoryRepo interface {
	// SaveHistory appends an event. A zero Timestamp is set to now.
	SaveHistory(ctx context.Context, userID string, e activity.Event) error

	// GetHistory returns all events newest first.
	GetHistory(ctx context.Context, userID string) ([]activity.Event, error)
}

// ProgressRepo manages the per-user progress snapshot.
type ProgressRepo interface {
	// GetProgress returns the snapshot, or an empty one if none exists.
	GetProgress(ctx context.Context, userID string) (activity.Snapshot, error)

	// SaveProgress merges the patch into the stored snapshot.
	SaveProgress(ctx context.Context, userID string, p activity.Patch) error
}

// QuizAttempt is the raw record of one submitted quiz.
type QuizAttempt struct {
	ID             string          `json:"id"`
	Topic          string          `json:"topic"`
	SubjectID      string          `json:"subjectId"`
	Difficulty     difficulty.Tier `json:"difficulty"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	CorrectAnswers int             `json:"correctAnswers"`
	QuizDate       time.Time       `json:"quizDate"`
}

// QuizAttemptRepo stores submitted quizzes.
type QuizAttemptRepo interface {
	SaveQuizAttempt(ctx context.Context, userID string, a QuizAttempt) error

	// ListQuizAttempts returns attempts newest first. limit <= 0 means all.
	ListQuizAttempts(ctx context.Context, userID string, limit int) ([]QuizAttempt, error)
}

// Bookmark is a saved topic.
type Bookmark struct {
	ID         string          `json:"id"`
	Topic      string          `json:"topic"`
	Difficulty difficulty.Tier `json:"difficulty"`
	SavedAt    time.Time       `json:"savedAt"`
}

// BookmarkRepo stores bookmarks keyed by ID.
type BookmarkRepo interface {
	// SaveBookmark upserts a bookmark and returns it with SavedAt set.
	// An empty ID is derived from the topic.
	SaveBookmark(ctx context.Context, userID string, b Bookmark) (Bookmark, error)
	ListBookmarks(ctx context.Context, userID string) ([]Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, id string) error
}

// Note is free-form text attached to a topic.
type Note struct {
	ID      string    `json:"id"`
	Topic   string    `json:"topic"`
	Content string    `json:"content"`
	SavedAt time.Time `json:"savedAt"`
}

// NoteRepo stores one note per topic.
type NoteRepo interface {
	SaveNote(ctx context.Context, userID string, n Note) (Note, error)
	ListNotes(ctx context.Context, userID string) ([]Note, error)
	DeleteNote(ctx context.Context, userID, id string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo records and inspects LLM API calls.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns the most recent events first.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// GetLLMRequest returns one event or ErrNotFound.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestEvent, error)
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug derives the record ID used for topic-keyed bookmarks and notes.
func Slug(topic string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(topic)), "-")
}
