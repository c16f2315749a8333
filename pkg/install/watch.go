package install

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/wpconf/pkg/config"
	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ConfigLoader returns a fresh configuration for each rebuild
type ConfigLoader func() (*config.Config, error)

// Notify receives the outcome of every rebuild
type Notify func(*Report, error)

// Watch runs once, then rebuilds whenever the template or a loaded
// configuration file changes. Rebuilds are debounced by watch.debounce and
// run one at a time. Every rebuild starts from the template, so
// opts.FromTarget is ignored. Watch returns when ctx is done.
func (r *Runner) Watch(ctx context.Context, load ConfigLoader, opts Options, notify Notify) error {
	logger := logging.GetLogger("install.watch")
	opts.FromTarget = false

	cfg, err := load()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create file watcher")
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing file watcher")
		}
	}()

	w := &watchSet{watcher: watcher, files: map[string]bool{}, dirs: map[string]bool{}, logger: logger}
	if err := w.track(cfg); err != nil {
		return err
	}

	notify(r.Run(ctx, cfg, opts))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			stop()
			timer = time.NewTimer(cfg.Watch.Debounce)
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("Watcher error")

		case <-fire:
			fire = nil
			next, err := load()
			if err != nil {
				logger.Error().Err(err).Msg("Failed to reload configuration")
				notify(nil, err)
				continue
			}
			cfg = next
			if err := w.track(cfg); err != nil {
				logger.Error().Err(err).Msg("Failed to watch new paths")
			}
			notify(r.Run(ctx, cfg, opts))
		}
	}
}

type watchSet struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	dirs    map[string]bool
	logger  zerolog.Logger
}

// track watches the parent directories of the template and config files,
// including config files that do not exist yet. Editors replace files by
// rename, so directories are watched rather than the files themselves.
func (w *watchSet) track(cfg *config.Config) error {
	files := append([]string{cfg.Template}, cfg.Source...)
	for _, name := range config.ConfigFileNames {
		files = append(files, filepath.Join(cfg.Root, name))
	}
	files = append(files, filepath.Join(cfg.Root, ".env"))
	for _, f := range files {
		f = filepath.Clean(f)
		w.files[f] = true

		dir := filepath.Dir(f)
		if w.dirs[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to watch %s", dir).WithDetail("path", dir)
		}
		w.dirs[dir] = true
		w.logger.Info().Str("dir", dir).Msg("Watching directory")
	}
	return nil
}
