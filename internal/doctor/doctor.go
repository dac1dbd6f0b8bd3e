package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pact-cli/pact/internal/config"
	"github.com/pact-cli/pact/internal/fsutil"
	"github.com/pact-cli/pact/internal/paths"
	"github.com/pact-cli/pact/internal/scaffold"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusInfo
	StatusWarn
	StatusFail
)

// Label is the bracketed tag printed in front of a check.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusInfo:
		return "[INFO]"
	case StatusWarn:
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}

// Check is one line of a report.
type Check struct {
	Section string
	Status  Status
	Message string
}

// Report collects checks in the order they ran.
type Report struct {
	Checks []Check
}

func (r *Report) add(section string, status Status, format string, args ...any) {
	r.Checks = append(r.Checks, Check{Section: section, Status: status, Message: fmt.Sprintf(format, args...)})
}

// Count returns how many checks ended with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == s {
			n++
		}
	}
	return n
}

// Healthy reports whether no check failed. Warnings do not count.
func (r *Report) Healthy() bool { return r.Count(StatusFail) == 0 }

// Print writes the report grouped by section, followed by a summary line.
func (r *Report) Print(w io.Writer) {
	section := ""
	for _, c := range r.Checks {
		if c.Section != section {
			section = c.Section
			fmt.Fprintf(w, "%s check:\n", section)
		}
		fmt.Fprintf(w, "  %s %s\n", c.Status.Label(), c.Message)
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "\n%d checks: %d warnings, %d failures\n",
		len(r.Checks), r.Count(StatusWarn), r.Count(StatusFail))
}

// VersionSource reports a tool's version string.
type VersionSource interface {
	Version(ctx context.Context) (string, error)
}

// Doctor runs the checks.
type Doctor struct {
	Config *config.Config
	FS     fsutil.FS
	Git    VersionSource
	Tmux   VersionSource
	// LookPath resolves executables; defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Run executes every check and returns the report.
func (d *Doctor) Run(ctx context.Context) *Report {
	r := &Report{}
	d.checkTool(ctx, r, "git", d.Git, MinGitVersion)
	d.checkTool(ctx, r, "tmux", d.Tmux, MinTmuxVersion)
	d.checkShell(r)
	d.checkConfig(r)
	d.checkTemplates(r)
	return r
}

func (d *Doctor) lookPath(name string) (string, error) {
	if d.LookPath != nil {
		return d.LookPath(name)
	}
	return exec.LookPath(name)
}

func (d *Doctor) checkTool(ctx context.Context, r *Report, name string, src VersionSource, minimum string) {
	const section = "Toolchain"
	path, err := d.lookPath(name)
	if err != nil {
		r.add(section, StatusFail, "%s not found on PATH", name)
		return
	}

	out, err := src.Version(ctx)
	if err != nil {
		r.add(section, StatusFail, "%s at %s: %v", name, path, firstLine(err.Error()))
		return
	}
	v, err := ExtractVersion(out)
	if err != nil {
		r.add(section, StatusWarn, "%s at %s: cannot determine version from %q", name, path, out)
		return
	}
	ok, err := MeetsMinimum(v, minimum)
	switch {
	case err != nil:
		r.add(section, StatusWarn, "%s %s at %s: %v", name, v, path, err)
	case !ok:
		r.add(section, StatusFail, "%s %s at %s is older than %s", name, v, path, minimum)
	default:
		r.add(section, StatusOK, "%s %s at %s", name, v, path)
	}
}

func (d *Doctor) checkShell(r *Report) {
	const section = "Shell"
	shell := scaffold.ResolveShell(d.Config.Shell)
	path, err := d.lookPath(shell)
	if err != nil {
		r.add(section, StatusFail, "init shell %s is not executable", shell)
		return
	}
	r.add(section, StatusOK, "init commands run with %s -lc", path)
}

func (d *Doctor) checkConfig(r *Report) {
	const section = "Config"
	if d.Config.File == "" {
		r.add(section, StatusInfo, "no config file at %s, using built-in defaults", config.FilePath())
	} else {
		r.add(section, StatusOK, "loaded %s", d.Config.File)
	}

	reg := d.Config.Registry()
	r.add(section, StatusOK, "%d languages, %d project types", len(reg.Languages()), len(reg.Categories()))
	for _, dup := range reg.Duplicates() {
		r.add(section, StatusWarn, "%s", dup)
	}
}

func (d *Doctor) checkTemplates(r *Report) {
	const section = "Templates"
	if d.FS.IsDir(d.Config.BaseDir) {
		r.add(section, StatusOK, "base directory %s", d.Config.BaseDir)
	} else {
		r.add(section, StatusInfo, "base directory %s does not exist yet", d.Config.BaseDir)
	}

	if !d.FS.IsDir(d.Config.TemplatesRoot) {
		r.add(section, StatusWarn, "templates root %s not found; template copies will be skipped", d.Config.TemplatesRoot)
		return
	}

	dirs := []struct{ label, rel string }{{"shared", scaffold.SharedDir}}
	seen := map[string]bool{scaffold.SharedDir: true}
	for _, l := range d.Config.Languages {
		if !l.HasTemplates() || seen[l.TemplateDir] {
			continue
		}
		seen[l.TemplateDir] = true
		dirs = append(dirs, struct{ label, rel string }{l.Alias, l.TemplateDir})
	}

	for _, dir := range dirs {
		p := paths.Normalize(d.Config.TemplatesRoot + "/" + dir.rel)
		if d.FS.IsDir(p) {
			r.add(section, StatusOK, "%s: %s", dir.label, p)
		} else {
			r.add(section, StatusWarn, "%s: %s missing", dir.label, p)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
