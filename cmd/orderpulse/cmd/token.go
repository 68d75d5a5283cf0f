package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/internal/config"
)

func tokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <merchant-id>",
		Short: "Issue a merchant API token",
		Long: "Issue a signed JWT for the given merchant ID, using the configured\n" +
			"signing secret and token TTL. The token authenticates both the REST\n" +
			"API and the websocket alert stream.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			token, err := middleware.SignToken(cfg.Auth.JWTSecret, args[0], cfg.Auth.TokenTTL)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}

			fmt.Println(token)
			return nil
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(tokenCommand())
}
