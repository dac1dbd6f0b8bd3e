// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"strings"

	"github.com/pact-cli/pact/internal/runner"
)

// Response is what Fake returns for a matching command.
type Response struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

type rule struct {
	prefix string
	resp   Response
}

// Fake records every command it is asked to run and answers from a list of
// prefix rules. Commands that match no rule succeed with empty output.
type Fake struct {
	Calls []runner.Command
	rules []rule
}

// New returns an empty Fake.
func New() *Fake { return &Fake{} }

// On registers resp for commands whose String() starts with prefix. Rules
// registered later take precedence.
func (f *Fake) On(prefix string, resp Response) *Fake {
	f.rules = append(f.rules, rule{prefix: prefix, resp: resp})
	return f
}

// Fail is shorthand for a rule that exits with status 1.
func (f *Fake) Fail(prefix string) *Fake {
	return f.On(prefix, Response{ExitCode: 1, Stderr: "fake failure"})
}

// Run implements runner.Runner.
func (f *Fake) Run(_ context.Context, c runner.Command) (*runner.Output, error) {
	f.Calls = append(f.Calls, c)
	s := c.String()
	for i := len(f.rules) - 1; i >= 0; i-- {
		r := f.rules[i]
		if strings.HasPrefix(s, r.prefix) {
			out := &runner.Output{ExitCode: r.resp.ExitCode, Stdout: r.resp.Stdout, Stderr: r.resp.Stderr}
			if r.resp.Err != nil {
				out.ExitCode = -1
			}
			return out, r.resp.Err
		}
	}
	return &runner.Output{}, nil
}

// Commands returns the rendered form of every recorded call, in order.
func (f *Fake) Commands() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}

// Ran reports whether any recorded call starts with prefix.
func (f *Fake) Ran(prefix string) bool {
	for _, c := range f.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			return true
		}
	}
	return false
}

// Find returns the first recorded call starting with prefix.
func (f *Fake) Find(prefix string) (runner.Command, bool) {
	for _, c := range f.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			return c, true
		}
	}
	return runner.Command{}, false
}
