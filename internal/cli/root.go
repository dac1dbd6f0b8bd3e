package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pact-cli/pact/internal/branding"
	"github.com/pact-cli/pact/internal/config"
	"github.com/pact-cli/pact/internal/dispatch"
	"github.com/pact-cli/pact/internal/fsutil"
	"github.com/pact-cli/pact/internal/registry"
	"github.com/pact-cli/pact/internal/request"
	"github.com/pact-cli/pact/internal/runner"
	"github.com/pact-cli/pact/internal/scaffold"
	"github.com/pact-cli/pact/internal/tmux"
	"github.com/pact-cli/pact/internal/vcs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	flagConfig  string
	flagVerbose bool
	flagDryRun  bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default $"+branding.EnvVar("config")+" or ~/"+branding.HomeDir()+"/config.yaml)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log every external command before it runs")
	pf.BoolVar(&flagDryRun, "dry-run", false, "Print commands and filesystem changes instead of performing them")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <command> [options]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates projects under a fixed directory layout
(<base_dir>/<type>/<language>/<name>), seeds them from template directories,
initializes git and opens a tmux session in the new project.`,
	Args: cobra.ArbitraryArgs,
	// Report "unknown command" rather than a flag error for `pact foo -l c`.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var reg *registry.Registry
		if cfg, err := config.Load(flagConfig); err == nil {
			reg = cfg.Registry()
		}
		usage := func(w io.Writer) { printUsage(w, reg) }
		if len(args) == 0 {
			return &usageError{usage: usage}
		}
		return &usageError{
			err:   fmt.Errorf("%w '%s'", request.ErrUnknownCommand, args[0]),
			usage: usage,
		}
	},
}

// usageError is reported as "Error: <err>" followed by usage text. A nil
// err prints only the usage.
type usageError struct {
	err   error
	usage func(io.Writer)
}

func (e *usageError) Error() string {
	if e.err == nil {
		return "usage"
	}
	return e.err.Error()
}

func (e *usageError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	report(rootCmd.ErrOrStderr(), err)
	return err
}

func report(w io.Writer, err error) {
	var ue *usageError
	if errors.As(err, &ue) {
		if ue.err != nil {
			fmt.Fprintf(w, "Error: %v\n\n", ue.err)
		}
		ue.usage(w)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// app holds what a command needs after configuration is loaded.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	runner runner.Runner
	fs     fsutil.FS
}

func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	} else if level != "" {
		log.Warnf("invalid log level %s, defaulting to info", level)
	}
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// setup loads configuration and builds the logger, runner and filesystem
// according to the global flags.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	for _, dup := range cfg.Registry().Duplicates() {
		log.Warn(dup)
	}

	a := &app{cfg: cfg, log: log}
	exec := runner.NewExec(log)
	if flagDryRun {
		a.runner = &runner.DryRun{Out: cmd.OutOrStdout(), Probes: exec}
		a.fs = fsutil.DryRun{Out: cmd.OutOrStdout()}
	} else {
		a.runner = exec
		a.fs = fsutil.OS{}
	}
	return a, nil
}

func (a *app) dispatcher() *dispatch.Dispatcher {
	return &dispatch.Dispatcher{
		BaseDir: a.cfg.BaseDir,
		FS:      a.fs,
		VCS:     vcs.New(a.runner),
		Mux:     tmux.New(a.runner),
		Scaffold: &scaffold.Resolver{
			FS:            a.fs,
			Runner:        a.runner,
			Shell:         scaffold.ResolveShell(a.cfg.Shell),
			TemplatesRoot: a.cfg.TemplatesRoot,
			Log:           a.log,
		},
		Log: a.log,
	}
}
