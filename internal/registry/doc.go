// Package registry holds the static language and project-category tables
// that pact resolves short CLI aliases against. Tables are built once from
// configuration at startup and never mutated; lookups are a linear scan
// where the first exact alias match wins.
package registry
