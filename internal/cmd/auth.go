package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapphire-forecast/sapphire-cli/internal/api"
	"github.com/sapphire-forecast/sapphire-cli/internal/config"
	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored API credentials",
	}
	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthStatusCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var url, token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials in the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.BaseURL(url); err != nil {
				return err
			}
			if err := config.SaveAccount(config.Account{BaseURL: url, AuthToken: token}); err != nil {
				return fmt.Errorf("saving credentials: %w", err)
			}
			cmd.Printf("Credentials saved for %s\n", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "API base URL")
	cmd.Flags().StringVar(&token, "api-token", "", "Bearer token (may be empty for unauthenticated services)")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored API credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteAccount(); err != nil {
				return fmt.Errorf("removing credentials: %w", err)
			}
			cmd.Println("Credentials removed")
			return nil
		},
	}
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the configured API endpoint and token state",
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := config.LoadAccount()
			if errors.Is(err, config.ErrNotConfigured) {
				cmd.Println("Not configured")
				return nil
			}
			if err != nil {
				return err
			}
			client, err := api.New(api.Config{
				BaseURL:    acct.BaseURL,
				AuthToken:  acct.AuthToken,
				MaxRetries: api.DefaultMaxRetries,
				BatchSize:  api.DefaultBatchSize,
				Timeout:    api.DefaultTimeout,
			})
			if err != nil {
				return err
			}
			cmd.Printf("URL: %s\n", acct.BaseURL)
			if client.IsAuthenticated() {
				cmd.Println("Token: set")
			} else {
				cmd.Println("Token: not set")
			}
			return nil
		},
	}
}
