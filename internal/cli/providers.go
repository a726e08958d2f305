package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fred-labs/create-fred-app/internal/models"
	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/spf13/cobra"
)

var providersJSON bool

func init() {
	providersCmd.Flags().BoolVar(&providersJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(providersCmd)
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported AI providers",
	Long: `List the providers known to the registry with their SDK package, credential
variable and default model. Providers not listed can still be used: they get
the package @ai-sdk/<id> and the variable <ID>_API_KEY.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if providersJSON {
			return writeProvidersJSON(cmd.OutOrStdout())
		}
		writeProvidersTable(cmd.OutOrStdout())
		return nil
	},
}

type providerEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Package      string `json:"package"`
	EnvVar       string `json:"envVar"`
	DefaultModel string `json:"defaultModel"`
	LiveListing  bool   `json:"liveListing"`
}

func providerEntries() []providerEntry {
	ids := providers.Supported()
	entries := make([]providerEntry, 0, len(ids))
	for _, id := range ids {
		d := providers.Lookup(id)
		entries = append(entries, providerEntry{
			ID:           d.ID,
			Name:         d.DisplayName,
			Package:      d.Package,
			EnvVar:       d.EnvVar,
			DefaultModel: d.DefaultModel,
			LiveListing:  models.Supports(id),
		})
	}
	return entries
}

func writeProvidersJSON(w io.Writer) error {
	out, err := json.MarshalIndent(providerEntries(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling providers: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

func writeProvidersTable(w io.Writer) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("ID", "NAME", "PACKAGE", "ENV VAR", "DEFAULT MODEL", "LISTING").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headingStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, e := range providerEntries() {
		listing := "static"
		if e.LiveListing {
			listing = "live"
		}
		t.Row(e.ID, e.Name, e.Package, e.EnvVar, e.DefaultModel, listing)
	}
	fmt.Fprintln(w, t.Render())
}
