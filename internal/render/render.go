// Package render substitutes {{NAME}} placeholders in template content and
// writes the result to disk.
package render

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fred-labs/create-fred-app/internal/platform"
)

// Variables maps placeholder names to their replacement values.
type Variables map[string]string

// placeholderPattern matches the placeholder syntax for any upper-case name.
var placeholderPattern = regexp.MustCompile(`\{\{[A-Z][A-Z0-9_]*\}\}`)

// Placeholder returns the token that stands for name in template content.
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// Render replaces every occurrence of each variable's placeholder with its
// value. Placeholders for names missing from vars are left as they are.
// Substituted values are not scanned again.
func Render(content string, vars Variables) string {
	if len(vars) == 0 {
		return content
	}
	pairs := make([]string, 0, 2*len(vars))
	for name, value := range vars {
		pairs = append(pairs, Placeholder(name), value)
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

// Unresolved returns the distinct placeholders still present in content, in
// order of first appearance.
func Unresolved(content string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllString(content, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// WriteRendered writes content to path, creating missing parent directories.
// Filesystem errors are returned as is, typically as *fs.PathError.
func WriteRendered(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), platform.DirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), platform.FilePerm)
}
