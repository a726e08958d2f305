package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse is returned when a listing payload does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed model listing response")

	// ErrInvalidCredential is returned when a credential fails a local shape check.
	ErrInvalidCredential = errors.New("credential has an unexpected format")

	// ErrMissingCredential is returned by adapters whose endpoint requires authentication.
	ErrMissingCredential = errors.New("credential required")
)

// ProviderAPIError is returned when a listing endpoint answers with a non-2xx status.
type ProviderAPIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderAPIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s API returned status %d", e.Provider, e.StatusCode)
}
