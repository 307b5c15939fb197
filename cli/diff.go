package cli

import (
	"github.com/safedep/rewind/tui"
	"github.com/spf13/cobra"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	var (
		at     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "diff <member>",
		Short: "Show what a version changed",
		Long: `Show the unified diff between a version and the one before it.

Without --at the latest version is used. The first version of a member is
shown as fully added.`,
		Example: `  rewind diff ada
  rewind diff ada --at 2024-03-01T10:05:00Z
  rewind diff ada --format json`,
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

			presenter := app.NewPresenter(getFormat(format), cmd.OutOrStdout())

			m, err := resolveMember(ctx, app.Store, args[0])
			if err != nil {
				return err
			}

			seq, err := loadSequence(ctx, app.Store, m)
			if err != nil {
				return err
			}

			idx, cur, err := pickVersion(m, seq, atTime)
			if err != nil {
				return err
			}

			view, err := tui.NewDiffView(m.Name, seq.At(idx-1), cur, idx+1, seq.Len())
			if err != nil {
				return err
			}

			return presenter.RenderDiff(view)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "version timestamp (RFC 3339); defaults to the latest")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
