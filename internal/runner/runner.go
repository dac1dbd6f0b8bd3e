package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrCommandFailed is wrapped by Check when a command cannot be started or
// exits with a non-zero status.
var ErrCommandFailed = errors.New("external command failed")

// Command is one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Interactive hands the terminal to the process (stdin, stdout and
	// stderr are not captured). Used for attaching to a session.
	Interactive bool
	// Quiet discards output instead of streaming it.
	Quiet bool
	// ReadOnly marks probes that never change anything. DryRun still
	// executes them.
	ReadOnly bool
}

// String renders the command the way a shell user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t'\"") {
			a = "'" + strings.ReplaceAll(a, "'", `'"'"'`) + "'"
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status zero.
func (o *Output) Success() bool { return o != nil && o.ExitCode == 0 }

// Runner executes a command and blocks until it exits. A non-zero exit
// status is reported through Output.ExitCode, not as an error; the error
// return is for commands that could not be run at all.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Check runs cmd and turns a start failure or a non-zero exit status into
// an error wrapping ErrCommandFailed. Captured stderr is appended only for
// Quiet commands; otherwise the user has already seen it.
func Check(ctx context.Context, r Runner, cmd Command) (*Output, error) {
	out, err := r.Run(ctx, cmd)
	if err != nil {
		return out, fmt.Errorf("%w: %s: %v", ErrCommandFailed, cmd, err)
	}
	if !out.Success() {
		msg := fmt.Sprintf("%s exited with status %d", cmd, out.ExitCode)
		if s := strings.TrimSpace(out.Stderr); s != "" && cmd.Quiet {
			msg += "\n" + s
		}
		return out, fmt.Errorf("%w: %s", ErrCommandFailed, msg)
	}
	return out, nil
}

// Probe runs a read-only command and reports whether it succeeded. Start
// failures count as "no".
func Probe(ctx context.Context, r Runner, cmd Command) bool {
	cmd.ReadOnly = true
	cmd.Quiet = true
	out, err := r.Run(ctx, cmd)
	return err == nil && out.Success()
}
