package models

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/genai"
)

const googlePageSize = 1000

func listGoogle(ctx context.Context, f *Fetcher, credential string) ([]string, error) {
	if credential == "" {
		return nil, ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      credential,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  f.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: f.baseURL("google")},
	})
	if err != nil {
		return nil, fmt.Errorf("creating google client: %w", err)
	}

	page, err := client.Models.List(ctx, &genai.ListModelsConfig{PageSize: googlePageSize})
	if err != nil {
		return nil, googleError(err)
	}

	var ids []string
	for _, m := range page.Items {
		if m == nil || m.Name == "" {
			return nil, fmt.Errorf("google: %w: model entry without name", ErrMalformedResponse)
		}
		// Entries that declare their actions must support text generation.
		if len(m.SupportedActions) > 0 && !slices.Contains(m.SupportedActions, "generateContent") {
			continue
		}
		id := strings.TrimPrefix(m.Name, "models/")
		if googleChatModel(id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func googleError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderAPIError{Provider: "google", StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &ProviderAPIError{Provider: "google", StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}
	return fmt.Errorf("listing google models: %w", err)
}
