// Package scaffold materializes a new Fred project. It walks a fixed manifest
// of templates, substitutes the project variables into each one and writes
// the result under the destination directory. Templates are looked up in an
// ordered list of roots, so a development checkout can override the copies
// embedded in the binary.
//
// Materialization is not atomic: when a step fails, files written before the
// failure stay on disk.
package scaffold
