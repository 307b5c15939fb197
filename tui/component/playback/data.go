package playback

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/safedep/rewind/core/member"
	coreplayback "github.com/safedep/rewind/core/playback"
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/storage"
)

func loadMembers(store storage.Store, interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		members, err := store.ListMembers(ctx)
		if err != nil {
			return loadErrorMsg{err: err}
		}

		summaries := make([]*member.Summary, 0, len(members))
		for _, m := range members {
			versions, err := store.QueryVersions(ctx, version.NewVersionFilter().WithMember(m.ID))
			if err != nil {
				return loadErrorMsg{err: err}
			}
			summaries = append(summaries, member.Summarize(m, versions, interval))
		}

		return membersLoadedMsg{summaries: summaries}
	}
}

func loadVersions(store storage.Store, m *member.Member) tea.Cmd {
	return func() tea.Msg {
		versions, err := store.QueryVersions(context.Background(), version.NewVersionFilter().WithMember(m.ID))
		if err != nil {
			return loadErrorMsg{err: err}
		}
		return versionsLoadedMsg{member: m, seq: version.NewSequence(versions)}
	}
}

// waitForAdvance blocks until the player advances on its own. It yields no
// message once the player is closed.
func waitForAdvance(player *coreplayback.AutoPlayer) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-player.Advanced(); !ok {
			return nil
		}
		return advancedMsg{}
	}
}

func runCode(runner corerunner.Runner, v *version.Version) tea.Cmd {
	return func() tea.Msg {
		result, err := runner.Run(context.Background(), v.Code)
		return runFinishedMsg{versionID: v.ID, result: result, err: err}
	}
}
