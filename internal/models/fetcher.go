package models

import (
	"context"
	"net/http"
	"slices"
	"sort"
	"strings"

	"github.com/fred-labs/create-fred-app/internal/branding"
	"github.com/fred-labs/create-fred-app/internal/logger"
	"github.com/fred-labs/create-fred-app/internal/providers"
)

// listFunc lists the raw (unsorted) model identifiers of one provider.
type listFunc func(ctx context.Context, f *Fetcher, credential string) ([]string, error)

// listers is the fixed set of providers with a listing adapter. Providers
// missing here (ollama, cohere, azure, bedrock, ...) are never contacted.
var listers = map[string]listFunc{
	"openai":     listOpenAI,
	"anthropic":  listAnthropic,
	"google":     listGoogle,
	"groq":       groqListing.list,
	"mistral":    mistralListing.list,
	"deepseek":   deepseekListing.list,
	"xai":        xaiListing.list,
	"togetherai": togetherListing.list,
	"openrouter": openrouterListing.list,
	"perplexity": listPerplexity,
}

var defaultBaseURLs = map[string]string{
	"openai":     "https://api.openai.com/v1",
	"anthropic":  "https://api.anthropic.com",
	"google":     "https://generativelanguage.googleapis.com",
	"groq":       "https://api.groq.com/openai/v1",
	"mistral":    "https://api.mistral.ai/v1",
	"deepseek":   "https://api.deepseek.com",
	"xai":        "https://api.x.ai/v1",
	"togetherai": "https://api.together.xyz/v1",
	"openrouter": "https://openrouter.ai/api/v1",
}

// Fetcher lists models for providers that expose a listing endpoint.
type Fetcher struct {
	httpClient *http.Client
	baseURLs   map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used by every adapter (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithBaseURL overrides the API base URL of one provider.
func WithBaseURL(provider, baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURLs[providers.Normalize(provider)] = strings.TrimRight(baseURL, "/")
	}
}

// New creates a Fetcher. No request timeout is configured; bound a fetch
// through the context passed to FetchModels when needed.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: http.DefaultClient,
		baseURLs:   make(map[string]string, len(defaultBaseURLs)),
	}
	for k, v := range defaultBaseURLs {
		f.baseURLs[k] = v
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Supports reports whether provider has a listing adapter.
func Supports(provider string) bool {
	_, ok := listers[providers.Normalize(provider)]
	return ok
}

// FetchModels returns the sorted model identifiers the provider currently
// offers. The boolean is false when the provider has no listing adapter or
// the listing failed for any reason; the cause is only logged at debug level.
func (f *Fetcher) FetchModels(ctx context.Context, provider, credential string) ([]string, bool) {
	id := providers.Normalize(provider)
	list, ok := listers[id]
	if !ok {
		logger.Debug("provider has no model listing", "provider", id)
		return nil, false
	}

	ids, err := list(ctx, f, credential)
	if err != nil {
		logger.Debug("model listing failed", "provider", id, "error", err)
		return nil, false
	}

	sort.Strings(ids)
	logger.Debug("model listing fetched", "provider", id, "count", len(ids))
	return ids, true
}

// Choices returns the models to offer for provider: the live listing when it
// succeeds and is non-empty, the static catalog otherwise. The registry
// default model is always part of the result. live reports which source won.
func (f *Fetcher) Choices(ctx context.Context, provider, credential string) (choices []string, live bool) {
	def := providers.DefaultModel(provider)
	if ids, ok := f.FetchModels(ctx, provider, credential); ok && len(ids) > 0 {
		return withDefault(ids, def), true
	}
	return withDefault(DefaultModels(provider), def), false
}

func withDefault(ids []string, def string) []string {
	if slices.Contains(ids, def) {
		return ids
	}
	return append([]string{def}, ids...)
}

func (f *Fetcher) baseURL(provider string) string {
	return f.baseURLs[provider]
}

func userAgent() string {
	return branding.CLIName()
}
