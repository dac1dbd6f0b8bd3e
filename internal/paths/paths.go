package paths

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Separator is the path separator used when composing root directories.
const Separator = '/'

// MaxRepoNameLen is the longest project name RepoNameFromURL will derive.
const MaxRepoNameLen = 255

// ErrInvalidURLFormat is returned when a project name cannot be derived from
// a clone URL.
var ErrInvalidURLFormat = errors.New("invalid URL format")

// BuildRootDir joins base, category, language and name with a single
// separator and collapses any run of separators. An empty name yields a
// path that ends in the language segment followed by a separator.
func BuildRootDir(base, category, language, name string) string {
	sep := string(Separator)
	return Normalize(base + sep + category + sep + language + sep + name)
}

// Normalize collapses every run of consecutive separators into one. It does
// not resolve "." or ".." and keeps a trailing separator.
func Normalize(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	prevSep := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == Separator {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ExpandHome replaces a leading "~" or "~/" with the current user's home
// directory. Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home + strings.TrimPrefix(path, "~"), nil
}

// RepoNameFromURL derives a project name from a clone URL: everything after
// the last separator, minus a trailing ".git".
func RepoNameFromURL(url string) (string, error) {
	i := strings.LastIndexByte(url, Separator)
	if i < 0 {
		return "", fmt.Errorf("%w: no '/' found in %q", ErrInvalidURLFormat, url)
	}
	name := strings.TrimSuffix(url[i+1:], ".git")
	if name == "" {
		return "", fmt.Errorf("%w: empty repository name in %q", ErrInvalidURLFormat, url)
	}
	if len(name) > MaxRepoNameLen {
		return "", fmt.Errorf("%w: repository name longer than %d characters", ErrInvalidURLFormat, MaxRepoNameLen)
	}
	return name, nil
}
