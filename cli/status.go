package cli

import (
	"github.com/safedep/rewind/internal/version"
	"github.com/safedep/rewind/tui"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show database and configuration status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			app, closeApp, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp()

			info, err := app.Store.Info(ctx)
			if err != nil {
				return ErrDatabase("failed to read database info", err)
			}

			view := &tui.StatusView{
				Version: version.Version,
				Database: tui.DatabaseView{
					Location:      info.Path,
					SizeBytes:     info.SizeBytes,
					SizeHuman:     tui.FormatBytes(info.SizeBytes),
					MemberCount:   info.MemberCount,
					VersionCount:  info.VersionCount,
					OldestVersion: info.OldestVersion,
					NewestVersion: info.NewestVersion,
				},
				Config: tui.ConfigStatusView{
					Location:     app.Paths.ConfigFile,
					Runner:       app.Config.Runner.Type,
					StepDuration: app.Config.Playback.StepDuration,
					Interval:     app.Config.Buckets.Interval,
				},
			}

			return app.NewPresenter(getFormat(format), cmd.OutOrStdout()).RenderStatus(view)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
