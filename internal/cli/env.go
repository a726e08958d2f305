package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envNoRedact bool

func init() {
	envCmd.Flags().BoolVar(&envNoRedact, "no-redact", false, "Show credential values without redaction")
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env [provider...]",
	Short: "Show which provider credentials are available",
	Long: `Show, for each provider, whether its credential variable is set in the
environment or in ./.env. These are the credentials a new project picks up
when --api-key is not given. Values are redacted unless --no-redact is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := args
		if len(ids) == 0 {
			ids = providers.Supported()
		}
		return showCredentials(cmd.OutOrStdout(), ".env", ids, !envNoRedact)
	},
}

// credentialSource describes where a provider credential was found.
type credentialSource struct {
	EnvVar string
	Value  string
	Origin string // "environment", ".env" or "" when unset
}

func lookupCredential(dotenv map[string]string, provider string) credentialSource {
	envVar := providers.EnvVarName(provider)
	if v := os.Getenv(envVar); v != "" {
		return credentialSource{EnvVar: envVar, Value: v, Origin: "environment"}
	}
	if v := dotenv[envVar]; v != "" {
		return credentialSource{EnvVar: envVar, Value: v, Origin: ".env"}
	}
	return credentialSource{EnvVar: envVar}
}

func showCredentials(w io.Writer, dotenvPath string, ids []string, redact bool) error {
	dotenv, err := godotenv.Read(dotenvPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", dotenvPath, err)
	}

	for _, id := range ids {
		id = providers.Normalize(strings.TrimSpace(id))
		src := lookupCredential(dotenv, id)
		if src.Origin == "" {
			fmt.Fprintf(w, "  %-12s %-30s %s\n", id, src.EnvVar, dimStyle.Render("not set"))
			continue
		}
		value := src.Value
		if redact {
			value = redactValue(value)
		}
		fmt.Fprintf(w, "  %-12s %-30s %s %s\n", id, src.EnvVar, value, dimStyle.Render("("+src.Origin+")"))
	}
	return nil
}

// redactValue keeps the first four characters of longer values.
func redactValue(value string) string {
	if len(value) >= 8 {
		return value[:4] + "***"
	}
	return "***"
}
