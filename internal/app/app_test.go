package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/screen"
	"github.com/abhisek/sparklearn/internal/ui/layout"
)

type tierScreen struct{}

func (tierScreen) Init() tea.Cmd                           { return nil }
func (s tierScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (tierScreen) View(int, int) string                    { return "content" }
func (tierScreen) Title() string                           { return "Practice" }
func (tierScreen) Tier() difficulty.Tier                   { return difficulty.Advanced }

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := NewAppModel(tierScreen{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_ViewShowsTier(t *testing.T) {
	var model tea.Model = NewAppModel(tierScreen{})
	model, _ = model.Update(tea.WindowSizeMsg{Width: layout.MinWidth + 20, Height: layout.MinHeight + 4})
	frame := model.(AppModel).render()
	assert.Contains(t, frame, "Advanced")
	assert.Contains(t, frame, "content")
}

func TestAppModel_TooSmall(t *testing.T) {
	var model tea.Model = NewAppModel(tierScreen{})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	frame := model.(AppModel).render()
	assert.Contains(t, frame, "Terminal too small!")
	assert.NotContains(t, frame, "content")
}
