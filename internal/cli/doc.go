// Package cli defines the Cobra command tree for create-fred-app. The root
// command creates a project; each other file registers one subcommand
// (providers, models, config, version). Commands delegate to internal
// packages for the work and only handle flags, credentials and output.
package cli
