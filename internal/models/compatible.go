package models

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// maxErrorBody caps how much of an error response is kept on ProviderAPIError.
const maxErrorBody = 512

// listing describes a GET endpoint returning a JSON array of model objects,
// the shape shared by OpenAI-compatible providers.
type listing struct {
	provider  string
	path      string                  // appended to the provider base URL
	array     string                  // gjson path of the model array
	keep      func(gjson.Result) bool // nil keeps every entry
	anonymous bool                    // endpoint answers without a credential
}

var (
	groqListing = listing{
		provider: "groq",
		path:     "/models",
		array:    "data",
		keep: func(m gjson.Result) bool {
			return !containsAny(m.Get("id").String(), "whisper", "tts", "guard")
		},
	}

	mistralListing = listing{
		provider: "mistral",
		path:     "/models",
		array:    "data",
		keep: func(m gjson.Result) bool {
			if chat := m.Get("capabilities.completion_chat"); chat.Exists() && !chat.Bool() {
				return false
			}
			return !containsAny(m.Get("id").String(), "embed", "moderation", "ocr")
		},
	}

	deepseekListing = listing{
		provider: "deepseek",
		path:     "/models",
		array:    "data",
	}

	xaiListing = listing{
		provider: "xai",
		path:     "/models",
		array:    "data",
		keep: func(m gjson.Result) bool {
			return !containsAny(m.Get("id").String(), "vision", "image")
		},
	}

	// Together answers with a bare array and tags each entry with its purpose.
	togetherListing = listing{
		provider: "togetherai",
		path:     "/models",
		array:    "@this",
		keep: func(m gjson.Result) bool {
			return m.Get("type").String() == "chat"
		},
	}

	openrouterListing = listing{
		provider:  "openrouter",
		path:      "/models",
		array:     "data",
		anonymous: true,
	}
)

func (l listing) list(ctx context.Context, f *Fetcher, credential string) ([]string, error) {
	if credential == "" && !l.anonymous {
		return nil, ErrMissingCredential
	}

	body, err := l.fetch(ctx, f, credential)
	if err != nil {
		return nil, err
	}
	return l.parse(body)
}

func (l listing) fetch(ctx context.Context, f *Fetcher, credential string) ([]byte, error) {
	url := f.baseURL(l.provider) + l.path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s models: %w", l.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &ProviderAPIError{Provider: l.provider, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", l.provider, err)
	}
	return body, nil
}

func (l listing) parse(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s: %w: invalid JSON", l.provider, ErrMalformedResponse)
	}
	arr := gjson.GetBytes(body, l.array)
	if !arr.IsArray() {
		return nil, fmt.Errorf("%s: %w: %q is not an array", l.provider, ErrMalformedResponse, l.array)
	}

	var ids []string
	var parseErr error
	arr.ForEach(func(_, m gjson.Result) bool {
		id := m.Get("id")
		if id.Type != gjson.String || id.Str == "" {
			parseErr = fmt.Errorf("%s: %w: model entry without id", l.provider, ErrMalformedResponse)
			return false
		}
		if l.keep == nil || l.keep(m) {
			ids = append(ids, id.Str)
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return ids, nil
}
