// Package vcs drives git for project initialization and cloning.
package vcs

import (
	"context"
	"strings"

	"github.com/pact-cli/pact/internal/runner"
)

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// Git runs git subcommands through a runner.Runner.
type Git struct {
	Runner runner.Runner
	Binary string
}

// New returns a Git using the default binary.
func New(r runner.Runner) *Git {
	return &Git{Runner: r, Binary: DefaultBinary}
}

func (g *Git) cmd(args ...string) runner.Command {
	bin := g.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	return runner.Command{Name: bin, Args: args}
}

// IsRepo reports whether dir is inside a git work tree.
func (g *Git) IsRepo(ctx context.Context, dir string) bool {
	return runner.Probe(ctx, g.Runner, g.cmd("-C", dir, "rev-parse", "--is-inside-work-tree"))
}

// Init creates a new repository in dir.
func (g *Git) Init(ctx context.Context, dir string) error {
	_, err := runner.Check(ctx, g.Runner, g.cmd("-C", dir, "init"))
	return err
}

// EnsureRepo initializes dir unless it already is a repository. It reports
// whether a new repository was created.
func (g *Git) EnsureRepo(ctx context.Context, dir string) (bool, error) {
	if g.IsRepo(ctx, dir) {
		return false, nil
	}
	if err := g.Init(ctx, dir); err != nil {
		return false, err
	}
	return true, nil
}

// Clone clones url into dest. git creates dest and any missing parents.
func (g *Git) Clone(ctx context.Context, url, dest string) error {
	_, err := runner.Check(ctx, g.Runner, g.cmd("clone", url, dest))
	return err
}

// Version returns the output of "git --version", trimmed.
func (g *Git) Version(ctx context.Context) (string, error) {
	c := g.cmd("--version")
	c.Quiet = true
	c.ReadOnly = true
	out, err := runner.Check(ctx, g.Runner, c)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}
