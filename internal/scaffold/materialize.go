package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fred-labs/create-fred-app/internal/logger"
	"github.com/fred-labs/create-fred-app/internal/packagejson"
	"github.com/fred-labs/create-fred-app/internal/platform"
	"github.com/fred-labs/create-fred-app/internal/project"
	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/fred-labs/create-fred-app/internal/render"
)

// SecretsFile is the credential file written next to the templates.
const SecretsFile = ".env"

// Result holds the outcome of a materialization.
type Result struct {
	OutputDir string
	Files     []string // relative paths, in write order
	Warnings  []string
}

type settings struct {
	roots       []TemplateRoot
	fredVersion string
}

// Option configures Materialize.
type Option func(*settings)

// WithRoots sets the template roots searched for each manifest entry.
func WithRoots(roots ...TemplateRoot) Option {
	return func(s *settings) {
		s.roots = roots
	}
}

// WithFredVersion sets the framework version constraint written to package.json.
func WithFredVersion(v string) Option {
	return func(s *settings) {
		s.fredVersion = v
	}
}

// Materialize writes the project described by opts under dest. The caller is
// expected to have checked that dest does not exist yet.
func Materialize(dest string, opts project.Options, options ...Option) (*Result, error) {
	s := settings{fredVersion: DefaultFredVersion}
	for _, o := range options {
		o(&s)
	}
	if len(s.roots) == 0 {
		s.roots = DefaultRoots("")
	}

	if err := project.CheckCredential(opts.Credential); err != nil {
		return nil, err
	}
	vars, err := NewVariables(opts, s.fredVersion)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dest, platform.DirPerm); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}
	for _, dir := range subdirectories(opts.IncludeExamples) {
		if err := os.MkdirAll(filepath.Join(dest, filepath.FromSlash(dir)), platform.DirPerm); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	result := &Result{OutputDir: dest}

	for _, entry := range Manifest(opts.IncludeExamples) {
		content, root, err := readTemplate(s.roots, entry.Template)
		if err != nil {
			return result, err
		}

		rendered := render.Render(string(content), vars)
		if left := render.Unresolved(rendered); len(left) > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unresolved placeholders %s", entry.Dest, strings.Join(left, ", ")))
		}

		if err := render.WriteRendered(filepath.Join(dest, filepath.FromSlash(entry.Dest)), rendered); err != nil {
			return result, err
		}
		result.Files = append(result.Files, entry.Dest)
		logger.Debug("wrote file", "path", entry.Dest, "template_root", root)
	}

	if opts.HasCredential() {
		line := providers.EnvVarName(opts.Provider) + "=" + opts.Credential + "\n"
		if err := platform.WriteSecretFile(filepath.Join(dest, SecretsFile), []byte(line)); err != nil {
			return result, err
		}
		result.Files = append(result.Files, SecretsFile)
		logger.Debug("wrote file", "path", SecretsFile)
	}

	result.Warnings = append(result.Warnings, checkPackageJSON(dest)...)
	return result, nil
}

// checkPackageJSON validates the generated package.json, returning issues as
// warnings.
func checkPackageJSON(dest string) []string {
	res, err := packagejson.ValidateFile(filepath.Join(dest, "package.json"))
	if err != nil {
		return []string{fmt.Sprintf("could not validate package.json: %v", err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, "package.json"+issue.Path+": "+issue.Message)
	}
	return warnings
}
