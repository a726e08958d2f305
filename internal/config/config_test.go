package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := DefaultProviderID(); got != DefaultProvider {
		t.Errorf("DefaultProviderID() = %q, want %q", got, DefaultProvider)
	}
	if got := FredVersion(); got != DefaultFredVersion {
		t.Errorf("FredVersion() = %q, want %q", got, DefaultFredVersion)
	}
	if got := TemplatesDir(); got != "" {
		t.Errorf("TemplatesDir() = %q, want empty", got)
	}
}

func TestEnvOverridesDefault(t *testing.T) {
	setupHome(t)
	t.Setenv("FREDAPP_DEFAULT_PROVIDER", "groq")
	Load()

	if got := DefaultProviderID(); got != "groq" {
		t.Errorf("DefaultProviderID() = %q, want %q", got, "groq")
	}
}

func TestSetPersists(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyFredVersion, "^0.2.0"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".fredapp", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := FredVersion(); got != "^0.2.0" {
		t.Errorf("FredVersion() after reload = %q, want %q", got, "^0.2.0")
	}
}
