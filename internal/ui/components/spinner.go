package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparklearn/internal/ui/theme"
)

// Spinner is a labelled loading indicator. Every spinner gets its own ID,
// so the tick loop of a replaced spinner dies out on the next frame.
type Spinner struct {
	Label string
	model spinner.Model
}

// NewSpinner creates a spinner that renders label next to its frames.
func NewSpinner(label string) Spinner {
	return Spinner{
		Label: label,
		model: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

// ID identifies the ticks this spinner accepts.
func (s Spinner) ID() int { return s.model.ID() }

// Tick starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return s, cmd
}

func (s Spinner) View() string {
	return s.model.View() + theme.Hint.Render(s.Label)
}
