package difficulty

// Band is the display category of a score.
type Band string

const (
	BandSuccess Band = "success"
	BandWarning Band = "warning"
	BandError   Band = "error"
)

// ScoreBand returns the display band for a score percentage.
func ScoreBand(score int) Band {
	switch {
	case score >= 80:
		return BandSuccess
	case score >= 50:
		return BandWarning
	default:
		return BandError
	}
}

// ScoreEmoji returns the badge shown next to a score percentage.
func ScoreEmoji(score int) string {
	switch {
	case score >= 90:
		return "🏆"
	case score >= 80:
		return "🌟"
	case score >= 60:
		return "👍"
	case score >= 40:
		return "💪"
	default:
		return "📚"
	}
}
