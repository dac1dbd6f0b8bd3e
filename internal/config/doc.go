// Package config loads pact's settings: the embedded defaults, merged with
// the user file at ~/.pact/config.yaml and PACT_* environment variables, then
// validated against an embedded JSON schema. The loaded Config is immutable
// for the rest of the run and is passed explicitly to the components that
// need it.
package config
