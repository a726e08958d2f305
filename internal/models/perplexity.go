package models

import (
	"context"
	"strings"
)

// Perplexity has no model-listing endpoint; a key with the expected prefix
// unlocks the curated list instead.
const perplexityKeyPrefix = "pplx-"

var perplexityModels = []string{
	"sonar",
	"sonar-deep-research",
	"sonar-pro",
	"sonar-reasoning",
	"sonar-reasoning-pro",
}

func listPerplexity(_ context.Context, _ *Fetcher, credential string) ([]string, error) {
	if !strings.HasPrefix(credential, perplexityKeyPrefix) {
		return nil, ErrInvalidCredential
	}
	return append([]string(nil), perplexityModels...), nil
}
