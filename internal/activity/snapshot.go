package activity

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/abhisek/sparklearn/internal/difficulty"
)

// Override is an optional stored value that takes precedence over a
// derived one. A zero Value with Set true is still an override.
type Override[T any] struct {
	Value T
	Set   bool
}

// Some returns an override holding v.
func Some[T any](v T) Override[T] {
	return Override[T]{Value: v, Set: true}
}

// Or returns the override value, or def when unset.
func (o Override[T]) Or(def T) T {
	if o.Set {
		return o.Value
	}
	return def
}

// OrElse is like Or but only computes the fallback when needed.
func (o Override[T]) OrElse(derive func() T) T {
	if o.Set {
		return o.Value
	}
	return derive()
}

// Ptr returns a pointer to the value, or nil when unset.
func (o Override[T]) Ptr() *T {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// FromPtr converts a nullable value into an override.
func FromPtr[T any](p *T) Override[T] {
	if p == nil {
		return Override[T]{}
	}
	return Some(*p)
}

func (o Override[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Override[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Override[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Snapshot is the stored per-user progress record. Every field is an
// optional override of the value derived from the activity log.
type Snapshot struct {
	TopicsStudied    Override[int]             `json:"topicsStudied"`
	QuizzesCompleted Override[int]             `json:"quizzesCompleted"`
	Streak           Override[int]             `json:"streak"`
	TotalStudyTime   Override[int]             `json:"totalStudyTime"`
	Tier             Override[difficulty.Tier] `json:"currentLevel"`
	UpdatedAt        time.Time                 `json:"updatedOn,omitzero"`
}

// Patch is a merge update for a Snapshot. Nil fields are left untouched.
type Patch struct {
	TopicsStudied    *int             `json:"topicsStudied,omitempty"`
	QuizzesCompleted *int             `json:"quizzesCompleted,omitempty"`
	Streak           *int             `json:"streak,omitempty"`
	TotalStudyTime   *int             `json:"totalStudyTime,omitempty"`
	Tier             *difficulty.Tier `json:"currentLevel,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.TopicsStudied == nil && p.QuizzesCompleted == nil &&
		p.Streak == nil && p.TotalStudyTime == nil && p.Tier == nil
}

// Apply merges the patch into s and returns the result.
func (p Patch) Apply(s Snapshot) Snapshot {
	if p.TopicsStudied != nil {
		s.TopicsStudied = Some(*p.TopicsStudied)
	}
	if p.QuizzesCompleted != nil {
		s.QuizzesCompleted = Some(*p.QuizzesCompleted)
	}
	if p.Streak != nil {
		s.Streak = Some(*p.Streak)
	}
	if p.TotalStudyTime != nil {
		s.TotalStudyTime = Some(*p.TotalStudyTime)
	}
	if p.Tier != nil {
		s.Tier = Some(*p.Tier)
	}
	return s
}
