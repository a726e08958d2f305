package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"
)

// anthropicPageLimit is the largest page the models endpoint serves, so one
// request returns the whole catalog.
const anthropicPageLimit = 1000

func listAnthropic(ctx context.Context, f *Fetcher, credential string) ([]string, error) {
	if credential == "" {
		return nil, ErrMissingCredential
	}

	client := anthropic.NewClient(
		option.WithAPIKey(credential),
		option.WithBaseURL(f.baseURL("anthropic")),
		option.WithHTTPClient(f.httpClient),
		option.WithMaxRetries(0),
	)

	page, err := client.Models.List(ctx, anthropic.ModelListParams{
		Limit: anthropic.Int(anthropicPageLimit),
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, &ProviderAPIError{Provider: "anthropic", StatusCode: apiErr.StatusCode, Body: anthropicErrorMessage(apiErr.RawJSON())}
		}
		return nil, fmt.Errorf("listing anthropic models: %w", err)
	}

	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		if m.ID == "" {
			return nil, fmt.Errorf("anthropic: %w: model entry without id", ErrMalformedResponse)
		}
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// anthropicErrorMessage extracts error.message from an API error payload,
// falling back to the capped raw body.
func anthropicErrorMessage(raw string) string {
	if msg := gjson.Get(raw, "error.message"); msg.Type == gjson.String {
		return msg.String()
	}
	if len(raw) > maxErrorBody {
		return raw[:maxErrorBody]
	}
	return raw
}
