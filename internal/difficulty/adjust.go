package difficulty

import "fmt"

const (
	// PromoteAt is the lowest score that moves a student up a tier.
	PromoteAt = 80
	// DemoteAt is the highest score that moves a student down a tier.
	DemoteAt = 40
)

// Adjustment is the outcome of evaluating a quiz score against a tier.
type Adjustment struct {
	NewTier Tier   `json:"newLevel"`
	Message string `json:"message"`
	Changed bool   `json:"changed"`
}

// Adjust decides the next tier for a quiz score (0-100).
// Promotion is checked before demotion; both saturate at the ends of the
// ladder. Out of range scores are clamped and an unknown tier is treated
// as Beginner.
func Adjust(score int, current Tier) Adjustment {
	score = clampScore(score)
	if !current.Valid() {
		current = Beginner
	}

	if score >= PromoteAt {
		if next, ok := current.Next(); ok {
			return Adjustment{
				NewTier: next,
				Message: fmt.Sprintf("🎉 Great job! You scored %d%%. Moving up to %s level!", score, next),
				Changed: true,
			}
		}
	}

	if score <= DemoteAt {
		if prev, ok := current.Prev(); ok {
			return Adjustment{
				NewTier: prev,
				Message: fmt.Sprintf("No worries! Let's strengthen your basics. Adjusting to %s level.", prev),
				Changed: true,
			}
		}
	}

	return Adjustment{
		NewTier: current,
		Message: fmt.Sprintf("Good effort! You scored %d%%. Keep practicing at the %s level.", score, current),
		Changed: false,
	}
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
