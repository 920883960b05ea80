package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTier is returned by ParseTier for values outside the tier ladder.
var ErrUnknownTier = errors.New("unknown difficulty tier")

// Tier is a student's difficulty level.
type Tier string

const (
	Beginner     Tier = "beginner"
	Intermediate Tier = "intermediate"
	Advanced     Tier = "advanced"
)

// AllTiers returns all tiers in order from lowest to highest.
func AllTiers() []Tier {
	return []Tier{Beginner, Intermediate, Advanced}
}

// ParseTier parses a tier name, ignoring case and surrounding space.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Valid reports whether t is on the tier ladder.
func (t Tier) Valid() bool {
	return t.index() >= 0
}

// Next returns the tier one step up. The bool is false at the top tier.
func (t Tier) Next() (Tier, bool) {
	all := AllTiers()
	i := t.index()
	if i < 0 || i == len(all)-1 {
		return t, false
	}
	return all[i+1], true
}

// Prev returns the tier one step down. The bool is false at the bottom tier.
func (t Tier) Prev() (Tier, bool) {
	i := t.index()
	if i <= 0 {
		return t, false
	}
	return AllTiers()[i-1], true
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return string(t)
	}
}

func (t Tier) index() int {
	for i, v := range AllTiers() {
		if v == t {
			return i
		}
	}
	return -1
}
