// Package scaffold populates a freshly created project root. It decides which
// template directories are copied and whether a language init command runs,
// and executes those steps in order: init command, shared templates,
// language templates.
package scaffold
