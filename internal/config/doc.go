// Package config defines the format-agnostic build model: the set of
// tables to generate, each with its ordered inputs, output file and
// emission strategy. A Loader produces a Model from a manifest; the CLI
// can also build a single-table Model directly from flags.
package config
