package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/safedep/dry/log"
	"github.com/safedep/rewind/core/member"
	coreplayback "github.com/safedep/rewind/core/playback"
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/tui"
	"github.com/safedep/rewind/tui/component/playback"
	"github.com/spf13/cobra"
)

// NewPlayCmd creates the play command.
func NewPlayCmd() *cobra.Command {
	var (
		at     string
		step   time.Duration
		plain  bool
		paused bool
	)

	cmd := &cobra.Command{
		Use:   "play [member]",
		Short: "Play back the code versions of a member",
		Long: `Play back the code versions of a member.

The interactive player lists every member with an activity sparkline and
steps through the versions of the selected one. Use arrow keys to step,
space to pause, d to toggle the diff view and r to run the shown version.

With --plain, or when stdout is not a terminal, every version is printed in
order as playback advances and the command exits at the last version.`,
		Example: `  rewind play
  rewind play ada
  rewind play ada --at 2024-03-01T10:05:00Z --paused
  rewind play ada --plain --step 200ms`,
		Args: cobra.MaximumNArgs(1),
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

			if step <= 0 {
				step = app.Config.Playback.StepDuration
			}

			var m *member.Member
			if len(args) == 1 {
				m, err = resolveMember(ctx, app.Store, args[0])
				if err != nil {
					return err
				}
			}

			if plain || !tui.IsWriterTerminal(cmd.OutOrStdout()) {
				if m == nil {
					return NewCLIError(ExitGeneral, "plain playback needs a member")
				}
				return playPlain(ctx, cmd, app, m, atTime, step, paused)
			}

			return playInteractive(app, m, atTime, step, paused)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "start at the version created at this time (RFC 3339)")
	cmd.Flags().DurationVar(&step, "step", 0, "time each version stays on screen (default from config)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print versions instead of opening the player")
	cmd.Flags().BoolVar(&paused, "paused", false, "start paused")

	return cmd
}

func playInteractive(app *App, m *member.Member, at time.Time, step time.Duration, paused bool) error {
	opts := playback.Options{
		Store:        app.Store,
		Runner:       playRunner(app),
		StepDuration: step,
		Paused:       paused || !app.Config.Playback.Autoplay,
		Interval:     app.Config.Buckets.Interval,
		Location:     app.Config.Location(),
		Theme:        app.Config.Display.Theme,
		Colors:       app.Config.ShouldUseColors(),
		SeekTo:       at,
	}
	if m != nil {
		opts.Member = m.ID.String()
	}

	model := playback.New(opts)
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("player failed: %w", err)
	}
	return nil
}

// playRunner returns the configured runner, or nil when it is unavailable.
// A missing runner only disables the run action of the player.
func playRunner(app *App) corerunner.Runner {
	run, err := app.Runners.Get(app.Config.Runner.Type)
	if err != nil {
		log.Warnf("Run disabled: %v", err)
		return nil
	}
	return run
}

func playPlain(ctx context.Context, cmd *cobra.Command, app *App, m *member.Member,
	at time.Time, step time.Duration, paused bool) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	presenter := app.NewPresenter(tui.FormatTable, cmd.OutOrStdout())

	seq, err := loadSequence(ctx, app.Store, m)
	if err != nil {
		return err
	}
	if seq.Len() == 0 {
		return presenter.RenderMessage(fmt.Sprintf("No versions for %s.", m.Name))
	}

	player := coreplayback.NewAutoPlayer(coreplayback.WithStepDuration(step))
	defer player.Close()

	player.Load(seq)
	if paused {
		player.Pause()
	}
	if !at.IsZero() && !player.Seek(at.UnixMilli()) {
		return ErrVersionNotFound(m.Name, at.Format(time.RFC3339Nano))
	}

	last := player.Snapshot().Position - 1
	for {
		snap := player.Snapshot()
		for i := last + 1; i <= snap.Position; i++ {
			if err := presenter.RenderStep(newStepView(m.Name, seq, i)); err != nil {
				return err
			}
		}
		last = snap.Position

		if !snap.Advancing {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-player.Advanced():
			if !ok {
				return nil
			}
		}
	}
}

func newStepView(name string, seq *version.Sequence, i int) *tui.StepView {
	v := seq.At(i)
	return &tui.StepView{
		MemberName: name,
		Position:   i + 1,
		Total:      seq.Len(),
		CreatedAt:  v.CreatedAt,
		Language:   v.Language,
		Code:       v.Code,
	}
}
