package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparklearn/internal/ui/components"
	"github.com/abhisek/sparklearn/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch s.phase {
	case phaseTopic:
		return s.renderPrompt(width, "What do you want to practice?", s.input.View())
	case phaseTier:
		return s.renderPrompt(width, fmt.Sprintf("How hard should %q be?", s.topic), s.tiers.View())
	case phaseLoading, phaseSubmitting:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n\n" + s.spinner.View())
	case phaseQuestions:
		return s.renderQuestion(width)
	case phaseError:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	return ""
}

func (s *PracticeScreen) renderPrompt(width int, title, body string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")
	card := theme.Card.Width(min(width-8, 60)).Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}

func (s *PracticeScreen) renderQuestion(width int) string {
	total := len(s.choices)
	answered := 0
	for _, mc := range s.choices {
		if mc.Answered() {
			answered++
		}
	}

	var b strings.Builder
	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %s · Question %d/%d", s.topic, s.current+1, total))
	b.WriteString(info)
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(answered)/float64(total), true, min(width-4, 50))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-4, 76)).Render(s.choices[s.current].View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")
	if s.allAnswered() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("All answered. Press Ctrl+S to submit.")))
	}
	return b.String()
}
