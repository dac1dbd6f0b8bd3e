package dispatch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pact-cli/pact/internal/fsutil"
	"github.com/pact-cli/pact/internal/paths"
	"github.com/pact-cli/pact/internal/registry"
	"github.com/pact-cli/pact/internal/request"
	"github.com/pact-cli/pact/internal/scaffold"
	"github.com/pact-cli/pact/internal/tmux"
	"github.com/sirupsen/logrus"
)

// VCS is the version-control collaborator.
type VCS interface {
	EnsureRepo(ctx context.Context, dir string) (bool, error)
	Clone(ctx context.Context, url, dest string) error
}

// Multiplexer opens a terminal session rooted at a directory.
type Multiplexer interface {
	Open(ctx context.Context, session, dir, keys string) (bool, error)
}

// Scaffolder populates a new project root.
type Scaffolder interface {
	Apply(ctx context.Context, lang registry.Language, rootDir string) (*scaffold.Result, error)
}

// Dispatcher runs requests against its collaborators.
type Dispatcher struct {
	// BaseDir is the directory all project roots are built under.
	BaseDir  string
	FS       fsutil.FS
	VCS      VCS
	Mux      Multiplexer
	Scaffold Scaffolder
	Log      logrus.FieldLogger
}

// Execute runs the handler for req.Command. req must have passed
// request.Validate.
func (d *Dispatcher) Execute(ctx context.Context, req *request.Request) error {
	switch req.Command {
	case request.CommandNew:
		return d.handleNew(ctx, req)
	case request.CommandClone:
		return d.handleClone(ctx, req)
	default:
		return fmt.Errorf("%w '%s'", request.ErrUnknownCommand, req.Command)
	}
}

// RootDir returns the directory a project named name would live in.
func (d *Dispatcher) RootDir(req *request.Request, name string) string {
	return paths.BuildRootDir(d.BaseDir, req.Category.FullName, req.Language.FullName, name)
}

func (d *Dispatcher) handleNew(ctx context.Context, req *request.Request) error {
	root := d.RootDir(req, req.Name)
	log := d.logger().WithFields(logrus.Fields{
		"language": req.Language.FullName,
		"category": req.Category.FullName,
	})
	log.Infof("Root directory: %s", root)

	if d.FS.IsDir(root) {
		log.WithField("dir", root).Info("Directory already exists, skipping initialization")
		return d.openSession(ctx, req, req.Name, root)
	}

	if err := d.FS.MkdirAll(root); err != nil {
		return err
	}
	log.WithField("dir", root).Info("Created directory")

	res, err := d.Scaffold.Apply(ctx, *req.Language, root)
	if err != nil {
		return err
	}
	logScaffold(log, res)

	created, err := d.VCS.EnsureRepo(ctx, root)
	if err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	if created {
		log.WithField("dir", root).Info("Initialized git repository")
	} else {
		log.WithField("dir", root).Info("Already a git repository")
	}

	return d.openSession(ctx, req, req.Name, root)
}

func logScaffold(log logrus.FieldLogger, res *scaffold.Result) {
	if res == nil {
		return
	}
	entry := log.WithFields(logrus.Fields{
		"dir":   res.RootDir,
		"files": res.Copied,
		"init":  res.InitRan,
	})
	if n := len(res.Warnings); n > 0 {
		entry.Warnf("Populated project with %d template warning(s)", n)
		return
	}
	entry.Info("Populated project")
}

func (d *Dispatcher) handleClone(ctx context.Context, req *request.Request) error {
	name := req.Name
	if name == "" {
		derived, err := paths.RepoNameFromURL(req.URL)
		if err != nil {
			return err
		}
		name = derived
	}

	root := d.RootDir(req, name)
	log := d.logger().WithFields(logrus.Fields{
		"language": req.Language.FullName,
		"category": req.Category.FullName,
	})
	log.Infof("Cloning %s into %s", req.URL, root)

	if err := d.VCS.Clone(ctx, req.URL, root); err != nil {
		return fmt.Errorf("cloning repository: %w", err)
	}
	return d.openSession(ctx, req, name, root)
}

func (d *Dispatcher) openSession(ctx context.Context, req *request.Request, name, root string) error {
	session := tmux.SessionName(name)
	keys := d.sessionKeys(*req.Language, root)

	created, err := d.Mux.Open(ctx, session, root, keys)
	if err != nil {
		return fmt.Errorf("opening tmux session %s: %w", session, err)
	}
	if created {
		d.logger().WithField("session", session).Debug("Created tmux session")
	}
	return nil
}

// sessionKeys returns the command to type into a new session, or "" when the
// language has none or its required path is missing from root.
func (d *Dispatcher) sessionKeys(lang registry.Language, root string) string {
	if lang.SessionCommand == "" {
		return ""
	}
	if lang.SessionRequires != "" && !d.FS.Exists(filepath.Join(root, lang.SessionRequires)) {
		d.logger().WithField("path", lang.SessionRequires).
			Debug("Session command skipped, required path not found")
		return ""
	}
	return lang.SessionCommand
}

func (d *Dispatcher) logger() logrus.FieldLogger {
	if d.Log == nil {
		return logrus.StandardLogger()
	}
	return d.Log
}
