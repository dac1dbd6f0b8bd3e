// Package tmux opens terminal multiplexer sessions rooted at a project
// directory.
package tmux

import (
	"context"
	"os"
	"strings"

	"github.com/pact-cli/pact/internal/runner"
)

// DefaultBinary is the tmux executable looked up on PATH.
const DefaultBinary = "tmux"

// Tmux runs tmux subcommands through a runner.Runner.
type Tmux struct {
	Runner runner.Runner
	Binary string
	// InsideTmux is true when pact itself runs inside a tmux client, in which
	// case switch-client is used instead of attach-session.
	InsideTmux bool
}

// New returns a Tmux that detects whether it runs inside tmux from $TMUX.
func New(r runner.Runner) *Tmux {
	return &Tmux{Runner: r, Binary: DefaultBinary, InsideTmux: os.Getenv("TMUX") != ""}
}

var sessionNameReplacer = strings.NewReplacer(".", "_", ":", "_")

// SessionName turns a project name into a valid tmux session name. tmux
// rejects '.' and ':' because they separate window and pane targets.
func SessionName(project string) string {
	return sessionNameReplacer.Replace(project)
}

func (t *Tmux) cmd(args ...string) runner.Command {
	bin := t.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	return runner.Command{Name: bin, Args: args}
}

func exact(session string) string { return "=" + session }

// IsServerRunning reports whether a tmux server is reachable.
func (t *Tmux) IsServerRunning(ctx context.Context) bool {
	return runner.Probe(ctx, t.Runner, t.cmd("info"))
}

// HasSession reports whether a session with exactly this name exists.
func (t *Tmux) HasSession(ctx context.Context, session string) bool {
	return runner.Probe(ctx, t.Runner, t.cmd("has-session", "-t", exact(session)))
}

// NewSession starts a session rooted at dir and attaches the terminal to it.
// It blocks until the client detaches.
func (t *Tmux) NewSession(ctx context.Context, session, dir string) error {
	c := t.cmd("new-session", "-s", session, "-c", dir)
	c.Interactive = true
	_, err := runner.Check(ctx, t.Runner, c)
	return err
}

// NewDetachedSession starts a session rooted at dir without attaching.
func (t *Tmux) NewDetachedSession(ctx context.Context, session, dir string) error {
	_, err := runner.Check(ctx, t.Runner, t.cmd("new-session", "-d", "-s", session, "-c", dir))
	return err
}

// SwitchClient moves the current tmux client to session.
func (t *Tmux) SwitchClient(ctx context.Context, session string) error {
	_, err := runner.Check(ctx, t.Runner, t.cmd("switch-client", "-t", exact(session)))
	return err
}

// AttachSession attaches the terminal to session and blocks until detach.
func (t *Tmux) AttachSession(ctx context.Context, session string) error {
	c := t.cmd("attach-session", "-t", exact(session))
	c.Interactive = true
	_, err := runner.Check(ctx, t.Runner, c)
	return err
}

// SendKeys types keys into the active pane of session followed by Enter.
func (t *Tmux) SendKeys(ctx context.Context, session, keys string) error {
	_, err := runner.Check(ctx, t.Runner, t.cmd("send-keys", "-t", session, keys, "Enter"))
	return err
}

// Version returns the output of "tmux -V", trimmed.
func (t *Tmux) Version(ctx context.Context) (string, error) {
	c := t.cmd("-V")
	c.Quiet = true
	c.ReadOnly = true
	out, err := runner.Check(ctx, t.Runner, c)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// Open makes session the user's current tmux session, creating it rooted
// at dir when it does not exist yet. keys, when non-empty, is typed into a
// newly created session before the user is attached. Open reports whether a
// new session was created.
func (t *Tmux) Open(ctx context.Context, session, dir, keys string) (bool, error) {
	running := t.IsServerRunning(ctx)
	if running && t.HasSession(ctx, session) {
		return false, t.focus(ctx, session)
	}

	if !running && keys == "" {
		return true, t.NewSession(ctx, session, dir)
	}

	if err := t.NewDetachedSession(ctx, session, dir); err != nil {
		return false, err
	}
	if keys != "" {
		if err := t.SendKeys(ctx, session, keys); err != nil {
			return true, err
		}
	}
	return true, t.focus(ctx, session)
}

func (t *Tmux) focus(ctx context.Context, session string) error {
	if t.InsideTmux {
		return t.SwitchClient(ctx, session)
	}
	return t.AttachSession(ctx, session)
}
