package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sparklearn/internal/ui/theme"
)

// MultiChoice is a single multiple-choice question. The correct answer
// is revealed once Reveal is called.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Chosen       int
	Revealed     bool
}

// NewMultiChoice creates a multiple-choice selector with nothing chosen.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Update moves the cursor and records a choice on enter or a letter key.
// Changing the choice is allowed until Reveal.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.Chosen = m.Selected
	default:
		if i, ok := letterIndex(key); ok && i < len(m.Options) {
			m.Selected = i
			m.Chosen = i
		}
	}
	return m, nil
}

// Answered reports whether an option has been chosen.
func (m MultiChoice) Answered() bool {
	return m.Chosen >= 0
}

// IsCorrect reports whether the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Chosen >= 0 && m.Chosen == m.CorrectIndex
}

// Reveal locks the choice and highlights the correct option.
func (m *MultiChoice) Reveal() {
	m.Revealed = true
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		mark := " "
		if i == m.Chosen {
			mark = "•"
		}
		line := fmt.Sprintf("%s%s %c)  %s", prefix, mark, 'A'+rune(i), opt)

		switch {
		case m.Revealed && i == m.CorrectIndex:
			line = theme.Correct.Render(line)
		case m.Revealed && i == m.Chosen:
			line = theme.Incorrect.Render(line)
		case m.Revealed:
			line = theme.Dimmed.Render(line)
		case i == m.Selected:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func letterIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0] | 0x20
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}
