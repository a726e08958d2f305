package project

import (
	"errors"
	"strings"

	"github.com/fred-labs/create-fred-app/internal/providers"
)

// ErrInvalidCredential is returned for credentials that cannot be written as a
// single NAME=value line.
var ErrInvalidCredential = errors.New("credential must not contain line breaks")

// CheckCredential rejects credentials containing a carriage return or newline.
func CheckCredential(credential string) error {
	if strings.ContainsAny(credential, "\r\n") {
		return ErrInvalidCredential
	}
	return nil
}

// Input holds the raw values collected from flags, prompts or configuration.
type Input struct {
	Name        string
	Provider    string
	Model       string
	Credential  string
	NoExamples  bool
	SkipInstall bool
}

// Options is a fully resolved project description.
type Options struct {
	Name            string
	Provider        string // lowercased registry identifier
	Model           string
	Credential      string // empty when none was supplied
	IncludeExamples bool
	SkipInstall     bool
}

// HasCredential reports whether a credential was supplied.
func (o Options) HasCredential() bool {
	return o.Credential != ""
}

// WithCredential returns a copy of o using credential.
func (o Options) WithCredential(credential string) (Options, error) {
	credential = strings.TrimSpace(credential)
	if err := CheckCredential(credential); err != nil {
		return o, err
	}
	o.Credential = credential
	return o, nil
}

// Resolve validates the name and fills in the provider and model.
// defaultProvider is used when in.Provider is blank; the model falls back to
// the provider's registry default.
func Resolve(in Input, defaultProvider string) (Options, error) {
	name := strings.TrimSpace(in.Name)
	if err := ValidateName(name); err != nil {
		return Options{}, err
	}
	credential := strings.TrimSpace(in.Credential)
	if err := CheckCredential(credential); err != nil {
		return Options{}, err
	}

	provider := strings.TrimSpace(in.Provider)
	if provider == "" {
		provider = strings.TrimSpace(defaultProvider)
	}
	provider = providers.Normalize(provider)
	if provider == "" {
		provider = "openai"
	}

	model := strings.TrimSpace(in.Model)
	if model == "" {
		model = providers.DefaultModel(provider)
	}

	return Options{
		Name:            name,
		Provider:        provider,
		Model:           model,
		Credential:      credential,
		IncludeExamples: !in.NoExamples,
		SkipInstall:     in.SkipInstall,
	}, nil
}
