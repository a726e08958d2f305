// Package packagejson checks the package.json of a generated project. The
// file is validated against an embedded JSON Schema and its dependency map can
// be read without decoding the whole document.
package packagejson
