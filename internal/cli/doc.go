// Package cli defines the Cobra command tree for the welcome CLI. Each file
// in this package registers one top-level command (categories, tasks, check,
// etc.) with the root command. Commands build a fresh walkthrough registry
// through loadRegistry and only handle flag parsing and output formatting.
package cli
