// Package project resolves the options of one project generation: the
// validated project name, the provider, the model and the optional
// credential. Options are immutable once resolved and are consumed by the
// scaffold package.
package project
