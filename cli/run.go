package cli

import (
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/tui"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var (
		at     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "run <member>",
		Short: "Run a code version",
		Long: `Run a code version of a member with the configured runner.

Without --at the latest version is run. A program that exits non-zero is
reported, not treated as a failure of rewind itself.`,
		Example: `  rewind run ada
  rewind run ada --at 2024-03-01T10:05:00Z --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			atTime, err := parseAt(at)
			if err != nil {
				return err
			}

			app, closeApp, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp()

			run, err := app.Runners.Get(app.Config.Runner.Type)
			if err != nil {
				return ErrConfig("runner unavailable", err)
			}

			m, err := resolveMember(ctx, app.Store, args[0])
			if err != nil {
				return err
			}

			seq, err := loadSequence(ctx, app.Store, m)
			if err != nil {
				return err
			}

			_, v, err := pickVersion(m, seq, atTime)
			if err != nil {
				return err
			}

			result, err := tui.RunWithSpinner("Running "+m.Name, func() (*corerunner.Result, error) {
				return run.Run(ctx, v.Code)
			}, tui.WithWriter(cmd.ErrOrStderr()))
			if err != nil {
				return ErrRunFailed("failed to run "+m.Name, err)
			}

			presenter := app.NewPresenter(getFormat(format), cmd.OutOrStdout())
			return presenter.RenderRun(tui.NewRunView(m.Name, run.Name(), v, result))
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "version timestamp (RFC 3339); defaults to the latest")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
