// Package watch reruns a build step when its input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces editor save bursts into one run.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a fixed set of files.
type Watcher struct {
	Debounce time.Duration
	Logger   zerolog.Logger
}

// New returns a Watcher with the default debounce.
func New(logger zerolog.Logger) *Watcher {
	return &Watcher{Debounce: DefaultDebounce, Logger: logger}
}

// Run calls fn after any of paths is written, created or renamed, and
// blocks until ctx is canceled. Directories are watched so that atomic
// saves (write temp + rename) are seen. Errors from fn are logged.
func (w *Watcher) Run(ctx context.Context, paths []string, fn func(context.Context) error) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if len(paths) == 0 {
		return errors.New("at least one path is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		targets[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := targets[abs]; !ok {
				continue
			}
			w.Logger.Debug().Str("path", abs).Str("op", event.Op.String()).Msg("input changed")
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			if err := fn(ctx); err != nil {
				w.Logger.Error().Err(err).Msg("rebuild failed")
			}
		}
	}
}
