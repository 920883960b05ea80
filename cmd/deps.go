package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sparklearn/internal/dashboard"
	"github.com/abhisek/sparklearn/internal/llm"
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/store"
	"github.com/abhisek/sparklearn/internal/study"
	"github.com/abhisek/sparklearn/internal/tutor"
)

// services are the domain services built over one store.
type services struct {
	store     *store.Store
	provider  llm.Provider
	study     *study.Service
	quiz      *quiz.Service
	dashboard *dashboard.Service
}

// buildServices opens the store and wires every service. The caller
// closes the returned store.
func buildServices(cmd *cobra.Command) (*services, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	cal, err := cfg.Stats.Calendar()
	if err != nil {
		st.Close()
		return nil, err
	}

	llmCfg := llm.ResolveConfig()
	if err := llmCfg.Validate(); err != nil {
		st.Close()
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	provider, err := llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo(), log)
	if err != nil {
		st.Close()
		return nil, err
	}

	tutorCfg := tutor.DefaultConfig()
	tutorCfg.FallbackOnError = cfg.Tutor.FallbackOnError
	tut := tutor.NewService(provider, tutorCfg, log)

	return &services{
		store:    st,
		provider: provider,
		study:    study.NewService(tut, st.History(), st.Bookmarks(), st.Notes(), log),
		quiz: quiz.NewService(tut, quiz.Repos{
			History:  st.History(),
			Attempts: st.QuizAttempts(),
			Progress: st.Progress(),
		}, log),
		dashboard: dashboard.NewService(st.History(), st.Progress(), st.Bookmarks(), cal, log),
	}, nil
}
