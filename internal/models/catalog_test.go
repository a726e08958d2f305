package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/fred-labs/create-fred-app/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModelsCoversEveryProvider(t *testing.T) {
	for _, id := range providers.Supported() {
		t.Run(id, func(t *testing.T) {
			ids := DefaultModels(id)
			require.NotEmpty(t, ids)
			assert.Contains(t, ids, providers.DefaultModel(id), "catalog should list the registry default")
		})
	}
}

func TestDefaultModelsReturnsCopy(t *testing.T) {
	first := DefaultModels("openai")
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultModels("openai")[0])
}

func TestDefaultModelsUnknownProvider(t *testing.T) {
	assert.Equal(t, []string{providers.FallbackModel}, DefaultModels("acme"))
}

func TestProviderAPIError(t *testing.T) {
	var err error = &ProviderAPIError{Provider: "groq", StatusCode: http.StatusTooManyRequests, Body: "slow down"}
	assert.Equal(t, "groq API returned status 429: slow down", err.Error())

	var apiErr *ProviderAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)

	bare := &ProviderAPIError{Provider: "openai", StatusCode: 500}
	assert.Equal(t, "openai API returned status 500", bare.Error())
}
