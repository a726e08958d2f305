package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fred-labs/create-fred-app/internal/branding"
	"github.com/fred-labs/create-fred-app/internal/config"
	"github.com/fred-labs/create-fred-app/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <name>",
	Short: branding.Description(),
	Long: `Create a new ` + branding.DisplayName() + ` agent project in ./<name>.

The project is wired to one AI provider: its SDK package is added to
package.json, its API key variable goes into .env.example with a
placeholder value, and a credential passed with --api-key (or found in the
environment) is written to .env only.

Examples:
  ` + branding.CLIName() + ` my-agent
  ` + branding.CLIName() + ` my-agent --provider anthropic
  ` + branding.CLIName() + ` my-agent --provider groq --model llama-3.1-8b-instant --no-examples`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level := config.LogLevel()
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger.Configure(level)
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
	}
	return err
}
