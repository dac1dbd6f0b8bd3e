package cli

import (
	"errors"
	"io"

	"github.com/pact-cli/pact/internal/request"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(cloneCmd)
}

// new and clone parse their own arguments so that -l/-t errors, alias
// resolution and flag permutation behave the same for both commands.

var newCmd = &cobra.Command{
	Use:   "new -l <language> -t <type> <project_name>",
	Short: "Create a new project",
	Long: `Create <base_dir>/<type>/<language>/<project_name>, copy the shared and
language templates into it (or run the language's init command), initialize
a git repository and open a tmux session there. An existing directory is
left alone and only the session is opened.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProject(cmd, request.CommandNew, args)
	},
}

var cloneCmd = &cobra.Command{
	Use:   "clone -l <language> -t <type> <git_url> [<new_name>]",
	Short: "Clone a repository",
	Long: `Clone <git_url> into <base_dir>/<type>/<language>/<name> and open a tmux
session there. <name> defaults to the last path segment of the URL without
its .git suffix.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProject(cmd, request.CommandClone, args)
	},
}

// scanGlobalFlags picks --config, --verbose and --dry-run out of args before
// the configuration (and with it the alias tables) is loaded.
func scanGlobalFlags(args []string) {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.AddFlagSet(rootCmd.PersistentFlags())
	fs.BoolP("help", "h", false, "")
	_ = fs.Parse(args)
}

func runProject(cmd *cobra.Command, c request.Command, args []string) error {
	scanGlobalFlags(args)
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	reg := a.cfg.Registry()
	usage := func(w io.Writer) { printCommandUsage(w, c, reg) }

	req, err := request.ParseAndValidate(c, args, reg, rootCmd.PersistentFlags())
	switch {
	case errors.Is(err, request.ErrHelp):
		usage(cmd.OutOrStdout())
		return nil
	case request.IsUsageError(err):
		return &usageError{err: err, usage: usage}
	case err != nil:
		return err
	}

	fields := logrus.Fields{
		"type":     req.Category.FullName,
		"language": req.Language.FullName,
	}
	if req.Command == request.CommandClone {
		fields["url"] = req.URL
	}
	a.log.WithFields(fields).Infof("Processing project %s", req.Command)

	return a.dispatcher().Execute(cmd.Context(), req)
}
