package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/safedep/dry/log"
	"golang.org/x/time/rate"
)

const (
	defaultDebounce    = 250 * time.Millisecond
	defaultMinInterval = time.Second
)

// WatchOptions configures a Watcher.
type WatchOptions struct {
	// Debounce is how long the file must stay quiet before re-importing.
	Debounce time.Duration
	// MinInterval bounds how often imports run.
	MinInterval time.Duration
	// OnImport receives the outcome of every import, including the first.
	OnImport func(*Result, error)
}

func (o WatchOptions) debounce() time.Duration {
	if o.Debounce <= 0 {
		return defaultDebounce
	}
	return o.Debounce
}

func (o WatchOptions) minInterval() time.Duration {
	if o.MinInterval <= 0 {
		return defaultMinInterval
	}
	return o.MinInterval
}

// Watcher re-imports an export whenever it changes on disk.
type Watcher struct {
	importer *Importer
	path     string
	opts     WatchOptions
	fs       *fsnotify.Watcher
	limiter  *rate.Limiter
}

// NewWatcher creates a watcher for the export at path. The parent directory
// is watched so that editors replacing the file are noticed.
func NewWatcher(importer *Importer, path string, opts WatchOptions) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		importer: importer,
		path:     abs,
		opts:     opts,
		fs:       fw,
		limiter:  rate.NewLimiter(rate.Every(opts.minInterval()), 1),
	}, nil
}

// Run imports the file once and then again after every change until ctx is
// done. Import failures are reported through OnImport and do not stop the
// watcher.
func (w *Watcher) Run(ctx context.Context) error {
	w.importOnce(ctx)

	debounce := time.NewTimer(w.opts.debounce())
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounce.Reset(w.opts.debounce())
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Warnf("File watch error: %v", err)

		case <-debounce.C:
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			w.importOnce(ctx)
		}
	}
}

func (w *Watcher) importOnce(ctx context.Context) {
	result, err := w.importer.ImportFile(ctx, w.path)
	if err != nil {
		log.Errorf("Import of %s failed: %v", w.path, err)
	}
	if w.opts.OnImport != nil {
		w.opts.OnImport(result, err)
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
