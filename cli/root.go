// Package cli provides the command-line interface for rewind.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/safedep/dry/log"
	"github.com/safedep/rewind/config"
	"github.com/safedep/rewind/internal/version"
	"github.com/safedep/rewind/runner"
	"github.com/safedep/rewind/storage"
	"github.com/safedep/rewind/tui"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Store     storage.Store
	Presenter tui.Presenter
	Paths     *config.Paths
	Runners   *runner.Registry
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) *App {
	paths := config.ResolvePaths()
	if globalFlags.ConfigPath != "" {
		paths.ConfigFile = globalFlags.ConfigPath
	}

	app := &App{
		Config:  cfg,
		Paths:   paths,
		Runners: runner.BuildRegistry(cfg.Runner),
	}
	app.Presenter = app.NewPresenter(tui.FormatTable, os.Stdout)

	return app
}

// NewPresenter creates a presenter writing to w with the display settings
// from the configuration.
func (a *App) NewPresenter(format tui.Format, w io.Writer) tui.Presenter {
	return tui.NewPresenter(format, tui.PresenterOptions{
		Writer:    w,
		UseColors: a.Config.ShouldUseColors(),
		Verbose:   globalFlags.Verbose,
		Location:  a.Config.Location(),
		Theme:     a.Config.Display.Theme,
	})
}

// InitStore initializes the database store.
func (a *App) InitStore(ctx context.Context) error {
	dbPath := a.Config.GetDatabasePath()
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		_ = store.Close()
		return err
	}
	a.Store = store
	return nil
}

// Close closes the application resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rewind",
		Short: "Replay how learners wrote their code",
		Long: `Rewind imports learner action exports and replays every saved code
version of a member on a timeline.

Members are listed with their version count, last activity and an activity
sparkline. The player steps through the versions automatically or by hand,
shows the diff to the previous version and can run any version.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("REWIND_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		NewImportCmd(),
		NewMembersCmd(),
		NewVersionsCmd(),
		NewDiffCmd(),
		NewPlayCmd(),
		NewRunCmd(),
		NewStatusCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger.
func setupInternalLogger() {
	// The player owns the terminal, so the stdout logger stays off.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("rewind", "cli")
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load config", err)
	}

	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	return NewApp(cfg), nil
}

// openApp loads the application and opens the store. The returned close
// function releases the store.
func openApp(ctx context.Context) (*App, func(), error) {
	app, err := loadApp()
	if err != nil {
		return nil, nil, err
	}

	if err := app.InitStore(ctx); err != nil {
		return nil, nil, ErrDatabase("failed to open database", err)
	}

	return app, func() {
		if err := app.Close(); err != nil {
			log.Errorf("failed to close app: %v", err)
		}
	}, nil
}

// getFormat returns the output format from flags or default.
func getFormat(format string) tui.Format {
	switch format {
	case "json":
		return tui.FormatJSON
	case "jsonl":
		return tui.FormatJSONL
	case "csv":
		return tui.FormatCSV
	default:
		return tui.FormatTable
	}
}
