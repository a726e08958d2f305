// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks that publish under a different name edit the
// YAML file only.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	DocsURL     string `yaml:"docs_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "create-fred-app",
			DisplayName: "Fred",
			Description: "Scaffold a new Fred agent project",
			HomeDir:     ".fredapp",
			EnvPrefix:   "FREDAPP",
			GoModule:    "github.com/fred-labs/create-fred-app",
			DocsURL:     "https://fred.dev/docs",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-fred-app").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable framework name (e.g., "Fred").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".fredapp").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FREDAPP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DocsURL returns the framework documentation link printed after scaffolding.
func DocsURL() string { load(); return defaults.DocsURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "FREDAPP_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
