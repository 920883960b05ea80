package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/dashboard"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/store"
)

func TestUsageByPurpose(t *testing.T) {
	events := []store.LLMRequestEvent{
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "quiz", Model: "gpt-4o-mini", InputTokens: 1000, OutputTokens: 500, LatencyMs: 100}},
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "quiz", Model: "gpt-4o-mini", InputTokens: 1000, OutputTokens: 500, LatencyMs: 300}},
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "explanation", Model: "local-llama", InputTokens: 10, OutputTokens: 10, LatencyMs: 50}},
	}

	rows := usageByPurpose(events)
	require.Len(t, rows, 2)
	assert.Equal(t, "quiz", rows[0].key)
	assert.Equal(t, 2, rows[0].calls)
	assert.Equal(t, int64(400), rows[0].latency)
	assert.False(t, rows[0].unpriced)
	assert.InDelta(t, 0.0009, rows[0].cost, 1e-9)

	assert.True(t, rows[1].unpriced)
	assert.Equal(t, "$0.0000*", formatUSD(rows[1].cost, rows[1].unpriced))
}

func TestRenderStats(t *testing.T) {
	score := 85
	d := &dashboard.Dashboard{
		Stats: activity.Stats{TopicsStudied: 3, QuizzesCompleted: 1, AverageScore: 85, WeeklyGoalPercent: 43},
		Recent: []activity.Event{
			{Type: activity.TypeQuiz, Topic: "Optics", Score: &score, Timestamp: time.Now()},
		},
	}
	out := renderStats("local", d, difficulty.Intermediate)
	assert.Contains(t, out, "Intermediate")
	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "Optics")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "ab", truncate("ab", 3))
}

func TestBuildVersion_PrefersStamped(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", buildVersion())

	version = ""
	assert.NotEmpty(t, buildVersion())
}
