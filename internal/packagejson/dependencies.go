package packagejson

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Dependencies returns the "dependencies" map of the package.json at path.
// A file without the key yields an empty map.
func Dependencies(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDependencies(data)
}

// ParseDependencies reads the "dependencies" map from package.json bytes.
func ParseDependencies(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing package.json: invalid JSON")
	}

	deps := make(map[string]string)
	res := gjson.GetBytes(data, "dependencies")
	if !res.Exists() {
		return deps, nil
	}
	if !res.IsObject() {
		return nil, fmt.Errorf("parsing package.json: dependencies is not an object")
	}
	res.ForEach(func(name, version gjson.Result) bool {
		deps[name.String()] = version.String()
		return true
	})
	return deps, nil
}
