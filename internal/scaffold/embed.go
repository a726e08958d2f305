package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templateFS embed.FS

// embeddedRoot returns the templates compiled into the binary.
func embeddedRoot() TemplateRoot {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// Only reachable if the embed directive above is changed.
		panic(err)
	}
	return TemplateRoot{Name: "embedded", FS: sub}
}
