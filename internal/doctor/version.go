package doctor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Minimum supported tool versions.
const (
	MinGitVersion = "2.0.0"
	// 2.1 added exact "=name" session targets.
	MinTmuxVersion = "2.1.0"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// ExtractVersion pulls the first dotted version number out of tool output
// such as "git version 2.43.0" or "tmux 3.3a".
func ExtractVersion(output string) (string, error) {
	v := versionPattern.FindString(output)
	if v == "" {
		return "", fmt.Errorf("no version number in %q", strings.TrimSpace(output))
	}
	return v, nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. A leading "v" is ignored.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// MeetsMinimum reports whether version is at least minimum.
func MeetsMinimum(version, minimum string) (bool, error) {
	cmp, err := CompareVersions(version, minimum)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
