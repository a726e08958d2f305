package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fred-labs/create-fred-app/internal/config"
	"github.com/spf13/cobra"
)

var configKeys = []string{
	config.KeyDefaultProvider,
	config.KeyFredVersion,
	config.KeyTemplatesDir,
	config.KeyLogLevel,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.fredapp/config.yaml.

Keys: ` + strings.Join(configKeys, ", ") + `.
Each key can be overridden with an environment variable, e.g. FREDAPP_DEFAULT_PROVIDER.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range configKeys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}

func validateConfigValue(key, value string) error {
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(configKeys, ", "))
	}

	switch key {
	case config.KeyFredVersion:
		if _, err := semver.NewConstraint(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	case config.KeyLogLevel:
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("invalid %s %q: must be debug, info, warn or error", key, value)
		}
	case config.KeyDefaultProvider:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
	}
	return nil
}
