// Package filter provides per-pixel color filters over packed ARGB buffers.
//
// Filters never modify their input; each call produces a fresh buffer so
// pipeline stages do not alias one another's storage.
package filter
