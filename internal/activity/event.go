package activity

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/sparklearn/internal/difficulty"
)

// ErrUnknownType is returned by ParseType for unrecognized names.
var ErrUnknownType = errors.New("unknown activity type")

// Type identifies the kind of study activity an event records.
type Type string

const (
	TypeLearning Type = "learning"
	TypeQuiz     Type = "quiz"
	TypeRevision Type = "revision"
	TypeDoubt    Type = "doubt"
)

// AllTypes returns every activity type.
func AllTypes() []Type {
	return []Type{TypeLearning, TypeQuiz, TypeRevision, TypeDoubt}
}

// ParseType validates an activity type name.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Event is one entry of a user's append-only activity log.
type Event struct {
	ID         string          `json:"id"`
	Topic      string          `json:"topic"`
	Type       Type            `json:"type"`
	Difficulty difficulty.Tier `json:"difficulty"`
	// Score is present only for quiz events.
	Score     *int      `json:"score,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// FilterType returns the events of the given type, preserving order.
func FilterType(events []Event, t Type) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// CountType counts events of the given type.
func CountType(events []Event, t Type) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
