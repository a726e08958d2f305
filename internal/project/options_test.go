package project

import (
	"errors"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	opts, err := Resolve(Input{Name: " p1 "}, "groq")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if opts.Name != "p1" {
		t.Errorf("Name = %q, want %q", opts.Name, "p1")
	}
	if opts.Provider != "groq" {
		t.Errorf("Provider = %q, want %q", opts.Provider, "groq")
	}
	if opts.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q, want registry default", opts.Model)
	}
	if !opts.IncludeExamples {
		t.Error("IncludeExamples should default to true")
	}
	if opts.HasCredential() {
		t.Error("HasCredential() should be false without a credential")
	}
}

func TestResolveExplicitValues(t *testing.T) {
	opts, err := Resolve(Input{
		Name:        "p1",
		Provider:    "OpenAI",
		Model:       "gpt-4",
		Credential:  " sk-123 ",
		NoExamples:  true,
		SkipInstall: true,
	}, "groq")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := Options{
		Name:            "p1",
		Provider:        "openai",
		Model:           "gpt-4",
		Credential:      "sk-123",
		IncludeExamples: false,
		SkipInstall:     true,
	}
	if opts != want {
		t.Errorf("Resolve() = %+v, want %+v", opts, want)
	}
}

func TestResolveUnknownProviderUsesFallbackModel(t *testing.T) {
	opts, err := Resolve(Input{Name: "p1", Provider: "Acme"}, "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if opts.Provider != "acme" || opts.Model != "gpt-4o-mini" {
		t.Errorf("got provider=%q model=%q", opts.Provider, opts.Model)
	}
}

func TestResolveEmptyDefaultProvider(t *testing.T) {
	opts, err := Resolve(Input{Name: "p1"}, "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if opts.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", opts.Provider)
	}
}

func TestResolveRejectsInvalidName(t *testing.T) {
	_, err := Resolve(Input{Name: "Bad Name"}, "openai")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestWithCredentialCopies(t *testing.T) {
	opts, err := Resolve(Input{Name: "p1"}, "openai")
	if err != nil {
		t.Fatal(err)
	}

	withKey, err := opts.WithCredential(" sk-1 ")
	if err != nil {
		t.Fatalf("WithCredential() error: %v", err)
	}
	if withKey.Credential != "sk-1" {
		t.Errorf("Credential = %q, want %q", withKey.Credential, "sk-1")
	}
	if opts.HasCredential() {
		t.Error("original options must not change")
	}
}

func TestCredentialLineBreaksRejected(t *testing.T) {
	for _, cred := range []string{
		"abc\nNODE_OPTIONS=--require=/tmp/x.js",
		"abc\rdef",
		"abc\r\nFOO=bar",
	} {
		if _, err := Resolve(Input{Name: "p1", Provider: "groq", Credential: cred}, ""); !errors.Is(err, ErrInvalidCredential) {
			t.Errorf("Resolve(credential %q) error = %v, want ErrInvalidCredential", cred, err)
		}

		opts, err := Resolve(Input{Name: "p1", Provider: "groq"}, "")
		if err != nil {
			t.Fatal(err)
		}
		got, err := opts.WithCredential(cred)
		if !errors.Is(err, ErrInvalidCredential) {
			t.Errorf("WithCredential(%q) error = %v, want ErrInvalidCredential", cred, err)
		}
		if got.HasCredential() {
			t.Errorf("WithCredential(%q) kept the credential", cred)
		}
	}

	// A trailing newline is trimmed, not rejected.
	if _, err := Resolve(Input{Name: "p1", Credential: "sk-1\n"}, ""); err != nil {
		t.Errorf("Resolve(trailing newline) error: %v", err)
	}
}
