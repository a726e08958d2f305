//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // HOME, holds ~/.fredapp/config.yaml
	WorkDir      string // where projects are created
	TemplatesDir string // development template root
}

// setupTestEnv creates isolated temp directories and points HOME and the
// FREDAPP_* variables at them. The environment is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		WorkDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	t.Setenv("FREDAPP_DEFAULT_PROVIDER", "")
	t.Setenv("FREDAPP_FRED_VERSION", "")
	t.Setenv("FREDAPP_TEMPLATES_DIR", "")

	viper.Reset()
	t.Cleanup(viper.Reset)

	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
