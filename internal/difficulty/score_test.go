package difficulty

import "testing"

func TestScoreBand(t *testing.T) {
	tests := []struct {
		score int
		want  Band
	}{
		{100, BandSuccess},
		{80, BandSuccess},
		{79, BandWarning},
		{50, BandWarning},
		{49, BandError},
		{0, BandError},
	}

	for _, tt := range tests {
		if got := ScoreBand(tt.score); got != tt.want {
			t.Errorf("ScoreBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreEmoji(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "🏆"},
		{90, "🏆"},
		{85, "🌟"},
		{60, "👍"},
		{45, "💪"},
		{39, "📚"},
	}

	for _, tt := range tests {
		if got := ScoreEmoji(tt.score); got != tt.want {
			t.Errorf("ScoreEmoji(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
