// Package dispatch executes validated new and clone requests. Each handler
// runs its steps in a fixed order and stops at the first failure; nothing
// already created is rolled back.
package dispatch
