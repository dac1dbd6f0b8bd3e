// Package runner is the single place pact starts external processes. The
// Runner interface lets the dispatcher, resolver, vcs and tmux packages be
// exercised with runnertest.Fake instead of real git/tmux/shell binaries.
// Exec runs commands for real; DryRun prints mutating commands and only
// executes read-only probes.
package runner
