package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

func listOpenAI(ctx context.Context, f *Fetcher, credential string) ([]string, error) {
	if credential == "" {
		return nil, ErrMissingCredential
	}

	client := openai.NewClient(
		option.WithAPIKey(credential),
		option.WithBaseURL(f.baseURL("openai")),
		option.WithHTTPClient(f.httpClient),
		option.WithMaxRetries(0),
	)

	page, err := client.Models.List(ctx)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &ProviderAPIError{Provider: "openai", StatusCode: apiErr.StatusCode, Body: apiErr.Message}
		}
		return nil, fmt.Errorf("listing openai models: %w", err)
	}

	var ids []string
	for _, m := range page.Data {
		if openAIChatModel(m.ID) {
			ids = append(ids, m.ID)
		}
	}
	return ids, nil
}
