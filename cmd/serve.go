package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/sparklearn/internal/auth"
	"github.com/abhisek/sparklearn/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTP.Addr = addr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		svc, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svc.store.Close()

		log.Info("LLM provider ready", "model", svc.provider.ModelID())

		srv := server.New(server.Deps{
			Study:       svc.study,
			Quiz:        svc.quiz,
			Dashboard:   svc.dashboard,
			Tokens:      auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
			Log:         log,
			CORSOrigins: cfg.HTTP.CORSOrigins,
		})
		return srv.Run(cmd.Context(), cfg.HTTP.Addr, cfg.HTTP.ShutdownTimeout)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}
