package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sparklearn/internal/app"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/logger"
	"github.com/abhisek/sparklearn/internal/screen"
	"github.com/abhisek/sparklearn/internal/screens/practice"
	"github.com/abhisek/sparklearn/internal/screens/welcome"
	"github.com/abhisek/sparklearn/internal/tutor"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [topic]",
	Short: "Take an adaptive quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd, strings.Join(args, " "))
	},
}

func init() {
	practiceCmd.Flags().Int("count", tutor.DefaultConfig().QuestionCount, "Questions per quiz")
}

// runPractice opens the services and launches the practice TUI.
func runPractice(cmd *cobra.Command, topic string) error {
	// The TUI owns the terminal. LLM calls are still recorded in the
	// store for `sparklearn llm list`.
	log = logger.Nop()

	svc, err := buildServices(cmd)
	if err != nil {
		return err
	}
	defer svc.store.Close()

	user := userFlag(cmd)
	snap, err := svc.dashboard.Progress(cmd.Context(), user)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")

	practiceScreen := practice.New(cmd.Context(), svc.quiz, practice.Options{
		UserID: user,
		Tier:   snap.Tier.Or(difficulty.Beginner),
		Count:  count,
		Topic:  topic,
	})
	if topic != "" {
		return app.Run(practiceScreen)
	}

	stats, err := svc.dashboard.Stats(cmd.Context(), user)
	if err != nil {
		return err
	}
	return app.Run(welcome.New(func() screen.Screen { return practiceScreen }, stats))
}
