package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sparklearn/internal/auth"
	"github.com/abhisek/sparklearn/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Issue a bearer token for the HTTP API",
	Long:  "Issue a bearer token signed with auth.jwt_secret. Useful for local testing of the API.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Auth.JWTSecret == "" {
			return config.ErrMissingSecret
		}
		tok, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL).Issue(args[0])
		if err != nil {
			return err
		}
		fmt.Println(tok)
		return nil
	},
}
