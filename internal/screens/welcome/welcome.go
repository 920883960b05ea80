// Package welcome is the splash screen shown before practice.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/router"
	"github.com/abhisek/sparklearn/internal/screen"
	"github.com/abhisek/sparklearn/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const bulbArt = `   .-"""-.
  /  \|/  \
  |  -*-  |
   \ /|\ /
    |___|
    |___|`

var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen shows a short splash and the student's headline stats,
// then hands over to the next screen on any key.
type WelcomeScreen struct {
	next         func() screen.Screen
	stats        activity.Stats
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next().
func New(next func() screen.Screen, stats activity.Stats) *WelcomeScreen {
	return &WelcomeScreen{next: next, stats: stats}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sparkle := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkleFrames[w.tickCount%len(sparkleFrames)])
	lines := strings.Split(lipgloss.NewStyle().Foreground(theme.Accent).Render(bulbArt), "\n")
	if w.elapsed >= bannerAt && len(lines) > 2 {
		lines[0] = sparkle + " " + lines[0]
		lines[2] = lines[2] + "  " + sparkle
	}
	sections := []string{strings.Join(lines, "\n")}

	if w.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(width), "", theme.Body.Bold(true).Render(w.tagline()))
	}
	if w.elapsed >= totalDur {
		sections = append(sections, "", theme.Hint.Render("press any key to start practicing"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (w *WelcomeScreen) tagline() string {
	switch {
	case w.stats.Streak > 1:
		return fmt.Sprintf("%d day streak. Keep it going!", w.stats.Streak)
	case w.stats.QuizzesCompleted > 0:
		return fmt.Sprintf("Welcome back! Average score %d%%.", w.stats.AverageScore)
	default:
		return "Let's learn something new."
	}
}
