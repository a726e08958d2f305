package project

import (
	"fmt"
	"regexp"
	"strings"
)

// maxNameLength is the longest package name the npm registry accepts.
const maxNameLength = 214

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// reservedNames cannot be used as project names: npm blacklisted names, the
// framework's own package and Node.js built-in modules.
var reservedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
	"fred":         true,

	"assert": true, "async_hooks": true, "buffer": true, "child_process": true,
	"cluster": true, "console": true, "constants": true, "crypto": true,
	"dgram": true, "diagnostics_channel": true, "dns": true, "domain": true,
	"events": true, "fs": true, "http": true, "http2": true, "https": true,
	"inspector": true, "module": true, "net": true, "os": true, "path": true,
	"perf_hooks": true, "process": true, "punycode": true, "querystring": true,
	"readline": true, "repl": true, "stream": true, "string_decoder": true,
	"sys": true, "timers": true, "tls": true, "trace_events": true, "tty": true,
	"url": true, "util": true, "v8": true, "vm": true, "wasi": true,
	"worker_threads": true, "zlib": true,
}

// ValidationError lists every reason a project name was rejected.
type ValidationError struct {
	Name     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, strings.Join(e.Problems, "; "))
}

// ValidateName checks name against npm package naming rules. It returns a
// *ValidationError describing all problems, or nil.
func ValidateName(name string) error {
	var problems []string

	switch {
	case name == "":
		problems = append(problems, "name cannot be empty")
	case strings.TrimSpace(name) != name:
		problems = append(problems, "name cannot have leading or trailing spaces")
	}
	if len(name) > maxNameLength {
		problems = append(problems, fmt.Sprintf("name cannot be longer than %d characters", maxNameLength))
	}
	if name != "" && strings.ToLower(name) != name {
		problems = append(problems, "name can no longer contain capital letters")
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		problems = append(problems, "name cannot start with a period or underscore")
	}
	if name != "" && !namePattern.MatchString(strings.ToLower(name)) {
		problems = append(problems, "name can only contain lowercase letters, digits, '.', '_' and '-', starting with a letter or digit")
	}
	if reservedNames[strings.ToLower(name)] {
		problems = append(problems, fmt.Sprintf("%q is a reserved name", name))
	}

	if len(problems) > 0 {
		return &ValidationError{Name: name, Problems: problems}
	}
	return nil
}
