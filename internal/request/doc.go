// Package request turns the tokens after "pact new" / "pact clone" into a
// validated Request. Parsing and validation are separate steps: Parse only
// rejects malformed input (unknown flags, aliases missing from the
// registry) while Validate enforces the per-command required fields.
package request
