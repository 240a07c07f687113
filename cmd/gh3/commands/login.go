package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/forgeapi-io/gh3/internal/constants"
	"github.com/forgeapi-io/gh3/pkg/ghclient"
	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to GitHub",
		Long:  "Verify a personal access token and store it in the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			client, err := ghclient.New(&github.Config{
				BaseURL: apiEndpoint,
				Token:   token,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the token before persisting it
			user, err := client.Users().AuthenticatedUser(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			if err := persistLogin(apiEndpoint, token); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Login)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "API endpoint URL")
	cmd.Flags().StringVar(&token, "token", "", "personal access token")

	return cmd
}

// persistLogin writes the verified credentials to ~/.gh3/config.yml.
func persistLogin(apiEndpoint, token string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	configDir := filepath.Join(home, ".gh3")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	settings := map[string]string{"token": token}
	if apiEndpoint != "" {
		settings["api"] = apiEndpoint
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
