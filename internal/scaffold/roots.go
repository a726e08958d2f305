package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// TemplateRoot is one location templates can be read from.
type TemplateRoot struct {
	Name string
	FS   fs.FS
}

// TemplateNotFoundError is returned when a template exists under none of the
// configured roots.
type TemplateNotFoundError struct {
	Template string
	Roots    []string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found in %s", e.Template, strings.Join(e.Roots, ", "))
}

// DefaultRoots returns the template roots in lookup order: devDir when set,
// then the embedded templates.
func DefaultRoots(devDir string) []TemplateRoot {
	var roots []TemplateRoot
	if devDir != "" {
		roots = append(roots, TemplateRoot{Name: devDir, FS: os.DirFS(devDir)})
	}
	return append(roots, embeddedRoot())
}

// readTemplate returns the content of name from the first root that has it,
// along with that root's name.
func readTemplate(roots []TemplateRoot, name string) ([]byte, string, error) {
	names := make([]string, 0, len(roots))
	for _, root := range roots {
		data, err := fs.ReadFile(root.FS, name)
		if err == nil {
			return data, root.Name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("reading template %s from %s: %w", name, root.Name, err)
		}
		names = append(names, root.Name)
	}
	return nil, "", &TemplateNotFoundError{Template: name, Roots: names}
}

// MissingTemplates returns the manifest templates, examples included, that
// none of roots provides.
func MissingTemplates(roots []TemplateRoot) []string {
	var missing []string
	for _, e := range Manifest(true) {
		if _, _, err := readTemplate(roots, e.Template); err != nil {
			missing = append(missing, e.Template)
		}
	}
	return missing
}
