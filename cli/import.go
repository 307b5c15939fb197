package cli

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/safedep/rewind/ingest"
	"github.com/safedep/rewind/tui"
	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	var (
		watch  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a learner action export",
		Long: `Import a learner action export.

The export is a JSON array or JSON lines of actions. Code versions and time
spent entries are stored; other action types are skipped. Importing the
same export again stores nothing new.`,
		Example: `  rewind import actions.jsonl
  rewind import actions.json --format json
  rewind import actions.jsonl --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			app, closeApp, err := openApp(commandContext(cmd))
			if err != nil {
				return err
			}
			defer closeApp()

			importer := ingest.NewImporter(app.Store)
			presenter := app.NewPresenter(getFormat(format), cmd.OutOrStdout())

			if watch {
				return watchImport(cmd, app, importer, path)
			}

			result, err := tui.RunWithSpinner("Importing "+path, func() (*ingest.Result, error) {
				return importer.ImportFile(commandContext(cmd), path)
			}, tui.WithWriter(cmd.ErrOrStderr()))
			if err != nil {
				return ErrImportFailed("failed to import "+path, err)
			}

			return presenter.RenderImport(tui.NewImportView(result, time.Now()))
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-import whenever the file changes")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}

func watchImport(cmd *cobra.Command, app *App, importer *ingest.Importer, path string) error {
	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer cancel()

	status := tui.NewStatusLine(cmd.ErrOrStderr(), app.Config.ShouldUseColors())
	defer status.Clear()

	watcher, err := ingest.NewWatcher(importer, path, ingest.WatchOptions{
		OnImport: func(r *ingest.Result, err error) {
			at := tui.FormatTime(time.Now(), app.Config.Location())
			if err != nil {
				status.Update("%s  import failed: %v", at, err)
				return
			}
			status.Update("%s  %d new versions, %d new time entries, %d known  (watching %s, Ctrl+C to stop)",
				at, r.Versions, r.SpentEntries, r.Duplicates, path)
		},
	})
	if err != nil {
		return ErrImportFailed("failed to watch "+path, err)
	}
	defer watcher.Close()

	return watcher.Run(ctx)
}

// commandContext returns the command context, which is nil when the command
// runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
