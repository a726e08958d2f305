// Package providers is the static registry of AI backend providers a new Fred
// project can target. For each provider identifier it knows the npm package
// that implements the provider, the environment variable holding its
// credential, and the model used when the caller does not pick one.
//
// Lookups are case-insensitive and never fail: an identifier that is not in
// the table gets a descriptor synthesized from the identifier itself. The
// registry is advisory; whether such a provider really exists is left to the
// package manager or the provider API that sees the generated project.
package providers
