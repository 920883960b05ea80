package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/dashboard"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/ui/components"
	"github.com/abhisek/sparklearn/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cal, err := cfg.Stats.Calendar()
		if err != nil {
			return err
		}
		svc := dashboard.NewService(st.History(), st.Progress(), st.Bookmarks(), cal, log)

		user := userFlag(cmd)
		d, err := svc.Load(cmd.Context(), user)
		if err != nil {
			return err
		}
		snap, err := svc.Progress(cmd.Context(), user)
		if err != nil {
			return err
		}

		fmt.Println(renderStats(user, d, snap.Tier.Or(difficulty.Beginner)))
		return nil
	},
}

func renderStats(user string, d *dashboard.Dashboard, tier difficulty.Tier) string {
	s := d.Stats
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(18)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	row := func(name, v string) string {
		return label.Render(name) + value.Render(v) + "\n"
	}

	out := theme.Title.Render("SparkLearn · "+user) + "\n\n"
	out += row("Level", lipgloss.NewStyle().Foreground(theme.TierColor(tier)).Render(tier.DisplayName()))
	out += row("Topics studied", fmt.Sprint(s.TopicsStudied))
	out += row("Quizzes", fmt.Sprint(s.QuizzesCompleted))
	out += row("Average score", fmt.Sprintf("%d%% %s", s.AverageScore, difficulty.ScoreEmoji(s.AverageScore)))
	out += row("Streak", fmt.Sprintf("%d day(s)", s.Streak))
	out += row("Study time", fmt.Sprintf("%d min", s.TotalStudyTime))
	out += "\n" + components.NewProgressBar("Weekly goal", float64(s.WeeklyGoalPercent)/100, true, 44).View() + "\n"

	if len(d.Recent) > 0 {
		out += "\n" + theme.Hint.Render("Recent") + "\n"
		for _, e := range d.Recent {
			out += "  " + describeEvent(e) + "\n"
		}
	}
	return theme.Card.Render(out)
}

func describeEvent(e activity.Event) string {
	line := fmt.Sprintf("%-9s %s", e.Type, e.Topic)
	if e.Score != nil {
		line += fmt.Sprintf("  %d%%", *e.Score)
	}
	return line
}
