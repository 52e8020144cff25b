// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads the global configuration when the config file changes
// on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onReload func(*Config)
}

// NewWatcher creates a watcher over the config directory. onReload is
// called with the fresh config after each successful reload; it may be
// nil. Call Run to start watching.
func NewWatcher(onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir, err := ConfigDir()
	if err != nil {
		fw.Close()
		return nil, err
	}
	// Watch the directory, not the file: editors replace the file on
	// save, which drops a watch installed on the file itself.
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{watcher: fw, onReload: onReload}, nil
}

// Run watches for config file changes until ctx is canceled. Events are
// debounced so an editor's write-then-rename sequence triggers a single
// reload.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var pending *time.Timer
	reload := func() {
		if err := ReloadGlobal(); err != nil {
			return
		}
		if w.onReload != nil {
			w.onReload(Global())
		}
	}

	for {
		select {
		case <-ctx.Done():
			if pending != nil {
				pending.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isConfigFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(200*time.Millisecond, reload)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// isConfigFile reports whether path names one of the config files.
func isConfigFile(path string) bool {
	base := filepath.Base(path)
	return base == "config.toml" || base == "config.json"
}
