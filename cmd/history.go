package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sparklearn/internal/activity"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded study activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		var typ activity.Type
		if t, _ := cmd.Flags().GetString("type"); t != "" {
			parsed, err := activity.ParseType(t)
			if err != nil {
				return err
			}
			typ = parsed
		}
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.History().GetHistory(cmd.Context(), userFlag(cmd))
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		if typ != "" {
			events = activity.FilterType(events, typ)
		}
		if len(events) == 0 {
			fmt.Println("No activity recorded.")
			return nil
		}
		if limit > 0 && len(events) > limit {
			events = events[:limit]
		}

		fmt.Printf("%-19s  %-9s  %-12s  %5s  %s\n", "Timestamp", "Type", "Difficulty", "Score", "Topic")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range events {
			score := "-"
			if e.Score != nil {
				score = fmt.Sprintf("%d%%", *e.Score)
			}
			fmt.Printf("%-19s  %-9s  %-12s  %5s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Type,
				e.Difficulty,
				score,
				e.Topic,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("type", "", "Only show one activity type (learning, quiz, revision, doubt)")
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show")
}
