package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/fred-labs/create-fred-app/internal/config"
	"github.com/fred-labs/create-fred-app/internal/logger"
	"github.com/fred-labs/create-fred-app/internal/models"
	"github.com/fred-labs/create-fred-app/internal/project"
	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/fred-labs/create-fred-app/internal/scaffold"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	createProvider    string
	createModel       string
	createAPIKey      string
	createNoExamples  bool
	createSkipInstall bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&createProvider, "provider", "", "AI provider (default from config, see 'providers')")
	f.StringVar(&createModel, "model", "", "Model identifier (default: the provider's default model)")
	f.StringVar(&createAPIKey, "api-key", "", "Provider credential written to .env (default: the provider's env var)")
	f.BoolVar(&createNoExamples, "no-examples", false, "Skip the example files under src/examples")
	f.BoolVar(&createSkipInstall, "skip-install", false, "Do not suggest installing dependencies")
}

func runCreate(cmd *cobra.Command, args []string) error {
	in := project.Input{
		Name:        args[0],
		Provider:    createProvider,
		Model:       createModel,
		Credential:  createAPIKey,
		NoExamples:  createNoExamples,
		SkipInstall: createSkipInstall,
	}

	result, opts, err := createProject(cmd.Context(), in, ".", models.New())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printResult(out, result)
	printNextSteps(out, opts)
	return nil
}

// createProject resolves in and materializes the project under baseDir.
// A credential missing from in is looked up in the environment after
// loading baseDir/.env.
func createProject(ctx context.Context, in project.Input, baseDir string, fetcher *models.Fetcher) (*scaffold.Result, project.Options, error) {
	opts, err := project.Resolve(in, config.DefaultProviderID())
	if err != nil {
		return nil, project.Options{}, err
	}

	dest := filepath.Join(baseDir, opts.Name)
	if _, err := os.Stat(dest); err == nil {
		return nil, opts, fmt.Errorf("destination %s already exists", dest)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, opts, fmt.Errorf("checking destination %s: %w", dest, err)
	}

	if !opts.HasCredential() {
		opts, err = opts.WithCredential(credentialFromEnv(filepath.Join(baseDir, ".env"), opts.Provider))
		if err != nil {
			return nil, opts, fmt.Errorf("reading %s: %w", providers.EnvVarName(opts.Provider), err)
		}
	}

	if opts.HasCredential() {
		checkModel(ctx, fetcher, opts)
	}

	var scaffoldOpts []scaffold.Option
	scaffoldOpts = append(scaffoldOpts, scaffold.WithRoots(scaffold.DefaultRoots(config.TemplatesDir())...))
	if v := config.FredVersion(); v != "" {
		scaffoldOpts = append(scaffoldOpts, scaffold.WithFredVersion(v))
	}

	logger.Debug("creating project", "dest", dest, "provider", opts.Provider, "model", opts.Model)
	result, err := scaffold.Materialize(dest, opts, scaffoldOpts...)
	if err != nil {
		return result, opts, fmt.Errorf("creating project %s: %w", opts.Name, err)
	}
	return result, opts, nil
}

// checkModel warns when the live listing does not offer the chosen model.
// An unavailable listing is not reported.
func checkModel(ctx context.Context, fetcher *models.Fetcher, opts project.Options) {
	ids, ok := fetcher.FetchModels(ctx, opts.Provider, opts.Credential)
	if !ok || len(ids) == 0 {
		return
	}
	if !slices.Contains(ids, opts.Model) {
		logger.Warn("model is not in the provider's model list", "provider", opts.Provider, "model", opts.Model)
	}
}

// credentialFromEnv returns the provider's credential variable after loading
// dotenvPath into the environment.
func credentialFromEnv(dotenvPath, provider string) string {
	if err := loadDotEnv(dotenvPath); err != nil {
		logger.Warn("could not load .env", "path", dotenvPath, "error", err)
	}
	return os.Getenv(providers.EnvVarName(provider))
}

// loadDotEnv loads environment variables from path without overriding
// variables that are already set. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("Created"), result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\n"+warnStyle.Render("Warnings:"))
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func printNextSteps(w io.Writer, opts project.Options) {
	fmt.Fprintln(w, "\n"+headingStyle.Render("Next steps:"))
	step := 1
	fmt.Fprintf(w, "  %d. cd %s\n", step, opts.Name)
	step++
	if opts.SkipInstall {
		fmt.Fprintf(w, "  %d. npm install %s\n", step, dimStyle.Render("(skipped: --skip-install, run it when ready)"))
	} else {
		fmt.Fprintf(w, "  %d. npm install\n", step)
	}
	step++
	if !opts.HasCredential() {
		fmt.Fprintf(w, "  %d. Set %s in .env (see .env.example)\n", step, providers.EnvVarName(opts.Provider))
		step++
	}
	fmt.Fprintf(w, "  %d. npm run dev\n", step)
}
