// Package config resolves the layered configuration for a print call.
// Options form a nested map tree merged in strict precedence order:
// built-in defaults, the committed process-wide store, per-call
// options, named style overlays, then derived values. Validation and
// style errors from every layer aggregate into a single diagnostic.
package config
