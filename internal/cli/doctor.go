package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fred-labs/create-fred-app/internal/config"
	"github.com/fred-labs/create-fred-app/internal/packagejson"
	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/fred-labs/create-fred-app/internal/scaffold"
	"github.com/spf13/cobra"
)

var checkProject string

func init() {
	doctorCmd.Flags().StringVar(&checkProject, "check-project", "", "Validate the package.json of a generated project directory")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for creating and running Fred projects",
	Long: `Run diagnostic checks: Node.js tooling on PATH, the template roots, and the
credential of the default provider. With --check-project, validate the
package.json of an existing project instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkProject != "" {
			return runProjectCheck(out, checkProject)
		}
		runRuntimeCheck(out)
		return runTemplateCheck(out, config.TemplatesDir())
	},
}

func runRuntimeCheck(w io.Writer) {
	fmt.Fprintln(w, headingStyle.Render("Runtime check:"))
	checkBinary(w, "node")
	checkBinary(w, "npm")

	provider := config.DefaultProviderID()
	envVar := providers.EnvVarName(provider)
	if os.Getenv(envVar) != "" {
		fmt.Fprintf(w, "  [ OK ] %s is set (default provider %s)\n", envVar, provider)
	} else {
		fmt.Fprintf(w, "  [INFO] %s is not set; projects will get a placeholder key\n", envVar)
	}
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

func runTemplateCheck(w io.Writer, devDir string) error {
	fmt.Fprintln(w, headingStyle.Render("Template check:"))
	if devDir != "" {
		if info, err := os.Stat(devDir); err != nil || !info.IsDir() {
			fmt.Fprintf(w, "  [WARN] templates_dir %s is not a directory; embedded templates will be used\n", devDir)
		} else {
			fmt.Fprintf(w, "  [ OK ] development templates at %s\n", devDir)
		}
	}

	missing := scaffold.MissingTemplates(scaffold.DefaultRoots(devDir))
	if len(missing) == 0 {
		fmt.Fprintln(w, "  [ OK ] all templates resolvable")
		return nil
	}
	for _, m := range missing {
		fmt.Fprintf(w, "  [FAIL] %s not found\n", m)
	}
	return fmt.Errorf("%d template(s) missing", len(missing))
}

func runProjectCheck(w io.Writer, dir string) error {
	path := filepath.Join(dir, "package.json")
	fmt.Fprintf(w, "%s %s\n", headingStyle.Render("Project check:"), path)

	result, err := packagejson.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("project validation failed: %w", err)
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
		return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Issues))
	}
	fmt.Fprintln(w, "  [ OK ] package.json is valid")

	deps, err := packagejson.Dependencies(path)
	if err != nil {
		return err
	}
	if _, ok := deps["fred"]; !ok {
		fmt.Fprintln(w, "  [WARN] no dependency on fred")
	}
	if pkg := providerPackage(deps); pkg != "" {
		fmt.Fprintf(w, "  [ OK ] provider package %s\n", pkg)
	} else {
		fmt.Fprintln(w, "  [WARN] no known provider package in dependencies")
		return errors.New("no provider package in dependencies")
	}
	return nil
}

// providerPackage returns the first registry provider package found in deps.
func providerPackage(deps map[string]string) string {
	for _, id := range providers.Supported() {
		if pkg := providers.PackageName(id); deps[pkg] != "" {
			return pkg
		}
	}
	return ""
}
