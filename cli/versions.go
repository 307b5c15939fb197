package cli

import (
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/tui"
	"github.com/spf13/cobra"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd() *cobra.Command {
	var (
		format   string
		limit    int
		withCode bool
	)

	cmd := &cobra.Command{
		Use:   "versions <member>",
		Short: "List the code versions of a member",
		Long: `List the code versions of a member in playback order.

The member is given by name or ID. Each version shows its creation time,
language, size and the lines changed since the previous version.`,
		Example: `  rewind versions ada
  rewind versions ada --limit 10 --code
  rewind versions 6f1f0f3e-8b7a-4d0e-9c36-2f5f0c1e7a10 --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

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
			versions := seq.Versions()

			views, err := tui.NewVersionViews(versions, withCode)
			if err != nil {
				return err
			}
			if limit > 0 && len(views) > limit {
				views = views[:limit]
			}

			summary := member.Summarize(m, versions, app.Config.Buckets.Interval)
			return presenter.RenderVersions(tui.NewMemberView(summary), views)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum versions to show (0 for all)")
	cmd.Flags().BoolVar(&withCode, "code", false, "include the code of each version")

	return cmd
}
