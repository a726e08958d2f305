package scaffold

// Entry pairs a template with the path it is written to, both relative.
type Entry struct {
	Template string
	Dest     string
	Example  bool
}

var manifest = []Entry{
	{Template: "package.json.tmpl", Dest: "package.json"},
	{Template: "tsconfig.json.tmpl", Dest: "tsconfig.json"},
	{Template: "README.md.tmpl", Dest: "README.md"},
	{Template: "gitignore.tmpl", Dest: ".gitignore"},
	{Template: "env.example.tmpl", Dest: ".env.example"},
	{Template: "fred.config.ts.tmpl", Dest: "fred.config.ts"},
	{Template: "src/index.ts.tmpl", Dest: "src/index.ts"},
	{Template: "src/config.ts.tmpl", Dest: "src/config.ts"},
	{Template: "src/agents/assistant.ts.tmpl", Dest: "src/agents/assistant.ts"},
	{Template: "src/tools/calculator.ts.tmpl", Dest: "src/tools/calculator.ts"},
	{Template: "src/examples/basic-chat.ts.tmpl", Dest: "src/examples/basic-chat.ts", Example: true},
	{Template: "src/examples/tool-calling.ts.tmpl", Dest: "src/examples/tool-calling.ts", Example: true},
	{Template: "src/examples/multi-agent.ts.tmpl", Dest: "src/examples/multi-agent.ts", Example: true},
}

// Manifest returns the entries to materialize, in write order. Example
// entries are left out unless includeExamples is set.
func Manifest(includeExamples bool) []Entry {
	out := make([]Entry, 0, len(manifest))
	for _, e := range manifest {
		if e.Example && !includeExamples {
			continue
		}
		out = append(out, e)
	}
	return out
}

// subdirectories returns the fixed directories created under the project root.
func subdirectories(includeExamples bool) []string {
	dirs := []string{"src", "src/tools", "src/agents"}
	if includeExamples {
		dirs = append(dirs, "src/examples")
	}
	return dirs
}
