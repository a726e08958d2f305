package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fred-labs/create-fred-app/internal/models"
	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/spf13/cobra"
)

var modelsAPIKey string

func init() {
	modelsCmd.Flags().StringVar(&modelsAPIKey, "api-key", "", "Provider credential (default: the provider's env var)")
	rootCmd.AddCommand(modelsCmd)
}

var modelsCmd = &cobra.Command{
	Use:   "models <provider>",
	Short: "List the models available for a provider",
	Long: `List models for a provider. The provider's API is queried when it has a
listing endpoint and a credential is available; otherwise a built-in list is
shown. The provider's default model is marked with *.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := providers.Normalize(strings.TrimSpace(args[0]))

		credential := strings.TrimSpace(modelsAPIKey)
		if credential == "" {
			credential = credentialFromEnv(".env", provider)
		}

		return listModels(cmd.Context(), cmd.OutOrStdout(), models.New(), provider, credential)
	},
}

func listModels(ctx context.Context, w io.Writer, fetcher *models.Fetcher, provider, credential string) error {
	d := providers.Lookup(provider)
	choices, live := fetcher.Choices(ctx, provider, credential)

	source := "built-in list"
	if live {
		source = "live from API"
	}
	fmt.Fprintf(w, "%s %s\n", headingStyle.Render(d.DisplayName+" models"), dimStyle.Render("("+source+")"))
	if !providers.IsKnown(provider) {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%q is not a known provider; assuming package %s", provider, d.Package)))
	}

	for _, id := range choices {
		marker := " "
		if id == d.DefaultModel {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %s\n", marker, id)
	}
	return nil
}
