package fsutil

import (
	"fmt"
	"io"
)

// DryRun reports mutations to Out instead of performing them. Queries go to
// the real filesystem.
type DryRun struct {
	Out io.Writer
	OS
}

// MkdirAll implements FS.
func (d DryRun) MkdirAll(path string) error {
	fmt.Fprintf(d.Out, "+ mkdir -p %s\n", path)
	return nil
}

// CopyDir implements FS.
func (d DryRun) CopyDir(src, dst string) (int, error) {
	fmt.Fprintf(d.Out, "+ cp -r %s/. %s\n", src, dst)
	return 0, nil
}
