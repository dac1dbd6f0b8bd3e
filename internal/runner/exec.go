package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Exec runs commands with os/exec.
type Exec struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    logrus.FieldLogger
}

// NewExec returns an Exec wired to the process's standard streams.
func NewExec(log logrus.FieldLogger) *Exec {
	return &Exec{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr, Log: log}
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, c Command) (*Output, error) {
	if e.Log != nil {
		e.Log.WithField("dir", c.Dir).Debugf("+ %s", c)
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	switch {
	case c.Interactive:
		cmd.Stdin = orReader(e.Stdin, os.Stdin)
		cmd.Stdout = orWriter(e.Stdout, os.Stdout)
		cmd.Stderr = orWriter(e.Stderr, os.Stderr)
	case c.Quiet:
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	default:
		cmd.Stdin = orReader(e.Stdin, os.Stdin)
		cmd.Stdout = io.MultiWriter(orWriter(e.Stdout, os.Stdout), &stdoutBuf)
		cmd.Stderr = io.MultiWriter(orWriter(e.Stderr, os.Stderr), &stderrBuf)
	}

	err := cmd.Run()
	out := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		out.ExitCode = -1
		return out, fmt.Errorf("starting %s: %w", c.Name, err)
	}
	return out, nil
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
