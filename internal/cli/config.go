package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agroctl/internal/config"
	apperrors "github.com/ariel-frischer/agroctl/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage agroctl configuration",
	Long: `Manage agroctl configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (AGROCTL_*)
  2. User config (~/.config/agroctl/config.yml)
  3. Built-in defaults`,
	Example: `  # Show current configuration
  agroctl config show

  # Set the API key
  agroctl config set api_key <your-key>`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return apperrors.Wrap(err, apperrors.Argument,
				"Run 'agroctl config keys' to list valid keys")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return apperrors.WrapWithMessage(err, apperrors.Configuration, "loading config")
		}

		out := cmd.OutOrStdout()
		for _, key := range config.SortedKeys() {
			schema := config.KnownKeys[key]
			value := configValue(cfg, key)
			if schema.Secret {
				value = maskSecret(value)
			}
			fmt.Fprintf(out, "%-14s %s\n", key+":", value)
		}
		fmt.Fprintf(out, "%-14s %t\n", "token valid:", cfg.HasValidToken())
		return nil
	},
}

var configClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset configuration to defaults",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Clear(); err != nil {
			return apperrors.Wrap(err, apperrors.Configuration)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all configuration keys",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, key := range config.SortedKeys() {
			schema := config.KnownKeys[key]
			fmt.Fprintf(out, "%-14s %-7s %s (default: %v)\n",
				key, schema.Type.String(), schema.Description, schema.Default)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.UserConfigPath()
		if err != nil {
			return apperrors.Wrap(err, apperrors.Configuration)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// configValue renders one setting for `config show`.
func configValue(cfg *config.Config, key string) string {
	switch key {
	case "api_key":
		return cfg.APIKey
	case "client_id":
		return cfg.ClientID
	case "client_secret":
		return cfg.ClientSecret
	case "access_token":
		return cfg.AccessToken
	case "token_expiry":
		return strconv.FormatInt(cfg.TokenExpiry, 10)
	case "base_url":
		return cfg.BaseURL
	case "timeout":
		return strconv.Itoa(cfg.Timeout)
	default:
		return ""
	}
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}

func init() {
	configCmd.AddCommand(configSetCmd, configShowCmd, configClearCmd, configKeysCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
