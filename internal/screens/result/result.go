// Package result shows a scored quiz with the tier adjustment.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/router"
	"github.com/abhisek/sparklearn/internal/screen"
	"github.com/abhisek/sparklearn/internal/tutor"
	"github.com/abhisek/sparklearn/internal/ui/components"
	"github.com/abhisek/sparklearn/internal/ui/layout"
	"github.com/abhisek/sparklearn/internal/ui/theme"
)

// ResultScreen displays a submitted quiz.
type ResultScreen struct {
	topic     string
	outcome   *quiz.Outcome
	questions []tutor.Question
	answers   map[int]int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.TierProvider = (*ResultScreen)(nil)

func New(topic string, outcome *quiz.Outcome, questions []tutor.Question, answers map[int]int) *ResultScreen {
	return &ResultScreen{topic: topic, outcome: outcome, questions: questions, answers: answers}
}

func (s *ResultScreen) Init() tea.Cmd { return nil }

func (s *ResultScreen) Title() string { return "Quiz Result" }

func (s *ResultScreen) Tier() difficulty.Tier {
	if s.outcome == nil {
		return ""
	}
	return s.outcome.Adjustment.NewTier
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Practice again"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	if s.outcome == nil {
		return ""
	}
	res := s.outcome.Result
	adj := s.outcome.Adjustment
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString(center(theme.Title.Render(s.topic)))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Foreground(theme.BandColor(difficulty.ScoreBand(res.Percent))).
		Bold(true).
		Render(fmt.Sprintf("%s  %d%%", difficulty.ScoreEmoji(res.Percent), res.Percent))
	b.WriteString(center(score))
	b.WriteString("\n")
	b.WriteString(center(theme.Dimmed.Render(fmt.Sprintf("%d of %d correct", res.Correct, res.Total))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(res.Percent)/100, false, min(width-8, 40))
	b.WriteString(center(bar.View()))
	b.WriteString("\n\n")

	msgStyle := theme.Body
	if adj.Changed {
		msgStyle = lipgloss.NewStyle().Foreground(theme.TierColor(adj.NewTier)).Bold(true)
	}
	b.WriteString(center(msgStyle.Render(adj.Message)))
	b.WriteString("\n")
	if !s.outcome.Persisted {
		b.WriteString(center(theme.Hint.Render("Progress could not be saved this time.")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(center(divider))
	b.WriteString("\n")

	for _, q := range s.questions {
		chosen, answered := s.answers[q.ID]
		mark := theme.Incorrect.Render("✗")
		if answered && chosen == q.Correct {
			mark = theme.Correct.Render("✓")
		}
		line := fmt.Sprintf("%s %d. %s", mark, q.ID, truncate(q.Question, max(width-12, 10)))
		b.WriteString("  " + line + "\n")
		if !answered || chosen != q.Correct {
			b.WriteString("     " + theme.Hint.Render(fmt.Sprintf("Answer: %s", option(q, q.Correct))) + "\n")
		}
	}
	return b.String()
}

func option(q tutor.Question, i int) string {
	if i < 0 || i >= len(q.Options) {
		return "?"
	}
	return fmt.Sprintf("%c) %s", 'A'+rune(i), q.Options[i])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
