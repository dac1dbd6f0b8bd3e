// Package cli defines the Cobra command tree for the pact CLI. Each file in
// this package registers one top-level command (new, clone, list, etc.) with
// the root command. Command implementations delegate to internal packages
// for the actual work and only handle flag parsing, I/O formatting and
// wiring.
package cli
