package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fred-labs/create-fred-app/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys. Each can also be set through the environment as
// FREDAPP_<KEY>, e.g. FREDAPP_DEFAULT_PROVIDER.
const (
	KeyDefaultProvider = "default_provider"
	KeyFredVersion     = "fred_version"
	KeyTemplatesDir    = "templates_dir"
	KeyLogLevel        = "log_level"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultProvider    = "openai"
	DefaultFredVersion = "^0.1.0"
	DefaultLogLevel    = "info"
)

// Dir returns the path to the config directory (~/.fredapp/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.fredapp/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyDefaultProvider, DefaultProvider)
	viper.SetDefault(KeyFredVersion, DefaultFredVersion)
	viper.SetDefault(KeyTemplatesDir, "")
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultProviderID returns the provider used when none is given on the command line.
func DefaultProviderID() string { return Get(KeyDefaultProvider) }

// FredVersion returns the version constraint written into generated package.json files.
func FredVersion() string { return Get(KeyFredVersion) }

// TemplatesDir returns the development template root, or "" to use the embedded templates only.
func TemplatesDir() string { return Get(KeyTemplatesDir) }

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }
