package scaffold

import (
	"context"
	"fmt"
	"os"

	"github.com/pact-cli/pact/internal/fsutil"
	"github.com/pact-cli/pact/internal/paths"
	"github.com/pact-cli/pact/internal/registry"
	"github.com/pact-cli/pact/internal/runner"
	"github.com/sirupsen/logrus"
)

// SharedDir is the template directory, relative to the templates root, that
// is copied into every new project.
const SharedDir = "templates/shared"

// StepKind identifies one action of a Plan.
type StepKind int

const (
	// StepInit runs the language init command through the shell.
	StepInit StepKind = iota
	// StepCopyShared copies the shared template directory.
	StepCopyShared
	// StepCopyLanguage copies the language template directory.
	StepCopyLanguage
)

func (k StepKind) String() string {
	switch k {
	case StepInit:
		return "init"
	case StepCopyShared:
		return "shared templates"
	case StepCopyLanguage:
		return "language templates"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is a single resolved action. Source is set for copy steps and
// Command for the init step.
type Step struct {
	Kind    StepKind
	Source  string
	Command string
}

// Fatal reports whether a failure of this step aborts project creation.
// Only the init command is fatal; template copies are best effort.
func (s Step) Fatal() bool { return s.Kind == StepInit }

// Result holds the outcome of Apply.
type Result struct {
	RootDir  string
	Copied   int
	InitRan  bool
	Warnings []string
}

// Resolver applies templates and init commands to project roots.
type Resolver struct {
	FS     fsutil.FS
	Runner runner.Runner
	// Shell runs init commands as `<Shell> -lc <command>`.
	Shell         string
	TemplatesRoot string
	Log           logrus.FieldLogger
}

// ResolveShell returns $SHELL, or fallback when it is unset.
func ResolveShell(fallback string) string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return fallback
}

// Plan returns the steps Apply would perform for lang, in execution order.
func (r *Resolver) Plan(lang registry.Language) []Step {
	steps := make([]Step, 0, 3)
	if lang.HasInitCommand() {
		steps = append(steps, Step{Kind: StepInit, Command: lang.InitCommand})
	}
	steps = append(steps, Step{
		Kind:   StepCopyShared,
		Source: paths.Normalize(r.TemplatesRoot + "/" + SharedDir),
	})
	if lang.HasTemplates() {
		steps = append(steps, Step{
			Kind:   StepCopyLanguage,
			Source: paths.Normalize(r.TemplatesRoot + "/" + lang.TemplateDir),
		})
	}
	return steps
}

// Apply runs the plan for lang inside rootDir. Copy failures are logged and
// collected as warnings; an init command failure is returned.
func (r *Resolver) Apply(ctx context.Context, lang registry.Language, rootDir string) (*Result, error) {
	res := &Result{RootDir: rootDir}
	log := r.logger().WithField("language", lang.FullName)

	for _, step := range r.Plan(lang) {
		switch step.Kind {
		case StepInit:
			log.WithField("dir", rootDir).Infof("Running init command: %s", step.Command)
			if err := r.runInit(ctx, step.Command, rootDir); err != nil {
				return res, err
			}
			res.InitRan = true
		case StepCopyShared, StepCopyLanguage:
			n, err := r.FS.CopyDir(step.Source, rootDir)
			res.Copied += n
			if err != nil {
				msg := fmt.Sprintf("copying %s failed: %v", step.Kind, err)
				res.Warnings = append(res.Warnings, msg)
				log.WithField("src", step.Source).Warn(msg)
				continue
			}
			log.WithFields(logrus.Fields{"src": step.Source, "dir": rootDir}).
				Infof("Copied %s", step.Kind)
		}
	}
	return res, nil
}

func (r *Resolver) runInit(ctx context.Context, command, rootDir string) error {
	shell := r.Shell
	if shell == "" {
		shell = ResolveShell("/bin/sh")
	}
	_, err := runner.Check(ctx, r.Runner, runner.Command{
		Name: shell,
		Args: []string{"-lc", command},
		Dir:  rootDir,
	})
	if err != nil {
		return fmt.Errorf("running init command: %w", err)
	}
	return nil
}

func (r *Resolver) logger() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}
