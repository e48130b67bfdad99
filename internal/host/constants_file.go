// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/stateless-settings/internal/logger"
)

// FileConstants holds the constants defined in a flat TOML file:
//
//	WP_STATELESS_MEDIA_MODE = "stateless"
//	WP_STATELESS_MEDIA_HIDE_SETTINGS_PANEL = true
//
// Lookups are safe while the file is being reloaded.
type FileConstants struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	values map[string]any
}

// NewFileConstants loads path. A missing or malformed file is an error.
func NewFileConstants(path string, log *logger.Logger) (*FileConstants, error) {
	c := &FileConstants{
		path:   filepath.Clean(path),
		logger: log,
		values: map[string]any{},
	}

	if err := c.Reload(); err != nil {
		return nil, err
	}

	return c, nil
}

// Lookup returns the value of constant name and whether it is defined.
func (c *FileConstants) Lookup(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.values[name]
	return value, ok
}

// Reload re-reads the file. On failure the previously loaded values stay.
func (c *FileConstants) Reload() error {
	values := map[string]any{}
	if _, err := toml.DecodeFile(c.path, &values); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeConstants, err)
	}

	c.mu.Lock()
	c.values = values
	c.mu.Unlock()

	return nil
}

// Watch reloads the file whenever it is written, created or renamed into
// place until ctx is done. The parent directory is watched so editors that
// replace the file atomically are picked up too.
func (c *FileConstants) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatchConstants, err)
	}

	if err = watcher.Add(filepath.Dir(c.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("%w: %w", ErrWatchConstants, err)
	}

	go c.processEvents(ctx, watcher)

	return nil
}

func (c *FileConstants) processEvents(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != c.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if err := c.Reload(); err != nil {
				c.logger.Err(err).Str("func", "FileConstants.processEvents").Str("file", c.path).Msg("keeping previous constants")
				continue
			}
			c.logger.Info().Str("func", "FileConstants.processEvents").Str("file", c.path).Msg("constants reloaded")

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.logger.Err(err).Str("func", "FileConstants.processEvents").Msg("constants watcher error")
		}
	}
}
