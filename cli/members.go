package cli

import (
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/tui"
	"github.com/spf13/cobra"
)

// NewMembersCmd creates the members command.
func NewMembersCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "members",
		Short: "List members and their activity",
		Long: `List members and their activity.

Each member is shown with the number of code versions, the time of the last
version, the time spent and a sparkline of versions per bucket interval.`,
		Example: `  rewind members
  rewind members --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			app, closeApp, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp()

			presenter := app.NewPresenter(getFormat(format), cmd.OutOrStdout())

			members, err := app.Store.ListMembers(ctx)
			if err != nil {
				return ErrDatabase("failed to list members", err)
			}

			views := make([]*tui.MemberView, 0, len(members))
			for _, m := range members {
				versions, err := app.Store.QueryVersions(ctx, version.NewVersionFilter().WithMember(m.ID))
				if err != nil {
					return ErrDatabase("failed to query versions", err)
				}
				views = append(views, tui.NewMemberView(member.Summarize(m, versions, app.Config.Buckets.Interval)))
			}

			return presenter.RenderMembers(views)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
