package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirPerm is the mode used for directories pact creates.
const DirPerm os.FileMode = 0755

// excludedNames are never copied out of a template directory.
var excludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// FS is the filesystem surface the dispatcher and resolver depend on.
type FS interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
	// Exists reports whether anything exists at path.
	Exists(path string) bool
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// CopyDir copies the contents of src into dst, merging with whatever dst
	// already holds. It returns the number of files written.
	CopyDir(src, dst string) (int, error)
}

// OS implements FS on the real filesystem.
type OS struct{}

// IsDir implements FS.
func (OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists implements FS.
func (OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// MkdirAll implements FS.
func (OS) MkdirAll(path string) error {
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// CopyDir implements FS.
func (OS) CopyDir(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("reading template directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("template source %s is not a directory", src)
	}
	n, err := copyDir(src, dst)
	if err != nil {
		return n, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return n, nil
}

// copyDir recursively copies src into dst, skipping excludedNames.
func copyDir(src, dst string) (int, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			n, err := copyDir(srcPath, dstPath)
			copied += n
			if err != nil {
				return copied, err
			}
		case entry.Type()&os.ModeSymlink != 0:
			if err := copySymlink(srcPath, dstPath); err != nil {
				return copied, err
			}
			copied++
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return copied, err
			}
			copied++
		}
		// Sockets, devices and pipes are skipped.
	}
	return copied, nil
}

// copyFile copies a single file, preserving its permission bits and
// overwriting dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, info.Mode().Perm())
}

// copySymlink recreates the link at dst with the same target.
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return err
		}
	}
	return os.Symlink(target, dst)
}
