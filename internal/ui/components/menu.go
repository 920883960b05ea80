package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sparklearn/internal/ui/theme"
)

// MenuItem is one selectable entry. Value is returned by Chosen.
type MenuItem struct {
	Label string
	Hint  string
	Value string
}

// Menu is a vertical list picker.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the cursor. Enter handling is left to the owner.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	switch kmsg.String() {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j", "tab":
		m.Selected = (m.Selected + 1) % len(m.Items)
	}
	return m, nil
}

// Chosen returns the item under the cursor.
func (m Menu) Chosen() MenuItem {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}
	}
	return m.Items[m.Selected]
}

func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		line := "    " + item.Label
		style := theme.Unselected
		if i == m.Selected {
			line = "  ▸ " + item.Label
			style = theme.Selected
		}
		s += style.Render(line)
		if item.Hint != "" {
			s += "  " + theme.Hint.Render(item.Hint)
		}
		s += "\n"
	}
	return s
}
