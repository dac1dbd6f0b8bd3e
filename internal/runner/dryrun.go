package runner

import (
	"context"
	"fmt"
	"io"
)

// DryRun prints every mutating command to Out and reports success without
// running it. Read-only probes are delegated to Probes so decisions that
// depend on the real system (is this a repo, is tmux running) stay accurate.
type DryRun struct {
	Out    io.Writer
	Probes Runner
}

// Run implements Runner.
func (d *DryRun) Run(ctx context.Context, c Command) (*Output, error) {
	if c.ReadOnly && d.Probes != nil {
		return d.Probes.Run(ctx, c)
	}
	if c.Dir != "" {
		fmt.Fprintf(d.Out, "+ (cd %s) %s\n", c.Dir, c)
	} else {
		fmt.Fprintf(d.Out, "+ %s\n", c)
	}
	return &Output{}, nil
}
