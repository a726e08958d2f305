// Package platform holds the file modes used for generated projects and the
// cross-platform helpers that apply them. On Windows permission bits are not
// enforced, so mode changes are skipped there.
package platform
