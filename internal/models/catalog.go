package models

import (
	_ "embed"
	"sync"

	"github.com/fred-labs/create-fred-app/internal/providers"
	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

var (
	catalogOnce sync.Once
	catalog     map[string][]string
)

func loadCatalog() map[string][]string {
	catalogOnce.Do(func() {
		catalog = make(map[string][]string)
		// A broken embedded file degrades to registry defaults only.
		_ = yaml.Unmarshal(rawCatalog, &catalog)
	})
	return catalog
}

// DefaultModels returns the static model list for provider. Providers absent
// from the catalog get a one-element list holding their registry default.
func DefaultModels(provider string) []string {
	if ids, ok := loadCatalog()[providers.Normalize(provider)]; ok && len(ids) > 0 {
		return append([]string(nil), ids...)
	}
	return []string{providers.DefaultModel(provider)}
}
