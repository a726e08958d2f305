package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fred-labs/create-fred-app/internal/project"
	"github.com/fred-labs/create-fred-app/internal/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProjectCheckGeneratedProject(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "p1")
	_, err := scaffold.Materialize(dest, project.Options{
		Name: "p1", Provider: "mistral", Model: "mistral-large-latest",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runProjectCheck(&buf, dest))
	assert.Contains(t, buf.String(), "package.json is valid")
	assert.Contains(t, buf.String(), "provider package @ai-sdk/mistral")
}

func TestRunProjectCheckInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"Bad Name"}`), 0644))

	var buf bytes.Buffer
	err := runProjectCheck(&buf, dir)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "[FAIL]")
}

func TestRunProjectCheckMissing(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, runProjectCheck(&buf, t.TempDir()))
}

func TestRunTemplateCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runTemplateCheck(&buf, ""))
	assert.Contains(t, buf.String(), "all templates resolvable")

	buf.Reset()
	require.NoError(t, runTemplateCheck(&buf, filepath.Join(t.TempDir(), "nope")))
	assert.Contains(t, buf.String(), "[WARN]")
}
