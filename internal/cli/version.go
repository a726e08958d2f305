package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fred-labs/create-fred-app/internal/branding"
	"github.com/fred-labs/create-fred-app/internal/config"
	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/fred-labs/create-fred-app/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the CLI version only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo describes this build and what new projects will be generated with.
type versionInfo struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	Date        string `json:"date"`
	FredVersion string `json:"fred_version"`
	Templates   string `json:"templates"`
	Providers   int    `json:"providers"`
}

func currentVersionInfo() versionInfo {
	fred := config.FredVersion()
	if fred == "" {
		fred = scaffold.DefaultFredVersion
	}
	templates := "embedded"
	if dir := config.TemplatesDir(); dir != "" {
		templates = dir + " (falls back to embedded)"
	}
	return versionInfo{
		Version:     buildVersion,
		Commit:      buildCommit,
		Date:        buildDate,
		FredVersion: fred,
		Templates:   templates,
		Providers:   len(providers.Supported()),
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.OutOrStdout(), currentVersionInfo(), versionShort, versionJSON)
	},
}

func printVersion(w io.Writer, info versionInfo, short, asJSON bool) error {
	switch {
	case short:
		fmt.Fprintln(w, info.Version)
	case asJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprintln(w, string(data))
	default:
		fmt.Fprintf(w, "%s %s (commit %s, built %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		fmt.Fprintf(w, "  fred dependency: %s\n", info.FredVersion)
		fmt.Fprintf(w, "  templates:       %s\n", info.Templates)
		fmt.Fprintf(w, "  providers:       %d known\n", info.Providers)
	}
	return nil
}
