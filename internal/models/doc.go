// Package models discovers which models a provider currently offers.
//
// FetchModels dispatches to one listing adapter per supported provider. An
// adapter issues a single request to the provider's model-listing endpoint
// (or, for Perplexity, checks the credential shape and returns a curated
// list), keeps the chat-capable identifiers and returns them sorted.
//
// Every failure is collapsed into an absence signal: FetchModels returns
// (nil, false) for unsupported providers, rejected credentials, non-2xx
// responses, transport errors and malformed payloads alike. Callers fall back
// to the static catalog returned by DefaultModels, which Choices does for them.
package models
