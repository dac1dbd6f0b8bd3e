package cli

import (
	"fmt"

	"github.com/pact-cli/pact/internal/doctor"
	"github.com/pact-cli/pact/internal/fsutil"
	"github.com/pact-cli/pact/internal/tmux"
	"github.com/pact-cli/pact/internal/vcs"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check git, tmux, the shell and template directories",
	Long: `Run diagnostic checks: git and tmux are installed and recent enough, the
init shell is executable, the configuration loads and every configured
template directory exists. Exits non-zero when a check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}

		d := &doctor.Doctor{
			Config: a.cfg,
			FS:     fsutil.OS{},
			Git:    vcs.New(a.runner),
			Tmux:   tmux.New(a.runner),
		}
		report := d.Run(cmd.Context())
		report.Print(cmd.OutOrStdout())

		if !report.Healthy() {
			return fmt.Errorf("%d check(s) failed", report.Count(doctor.StatusFail))
		}
		return nil
	},
}
