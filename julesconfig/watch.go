package julesconfig

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch follows a config file and sends a freshly loaded Config whenever
// the file is written. The channel is closed when the context is
// cancelled. Files that temporarily fail to parse are skipped; the watch
// keeps running so a corrected file is picked up.
//
// Uses fsnotify for efficient file watching with polling fallback. Useful
// for picking up a rotated API key without restarting.
func Watch(ctx context.Context, path string) (<-chan Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	ch := make(chan Config, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching the file
		// directly; editors often replace rather than write in place).
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			watchPolling(ctx, ch, path)
			return
		}

		watchEvents(ctx, ch, path, watcher)
	}()

	return ch, nil
}

func watchEvents(ctx context.Context, ch chan<- Config, path string, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			emit(ctx, ch, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable, keep watching.
			_ = err
		}
	}
}

func watchPolling(ctx context.Context, ch chan<- Config, path string) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			emit(ctx, ch, path)
		}
	}
}

// emit loads the file and sends the config, dropping it if the consumer
// is gone.
func emit(ctx context.Context, ch chan<- Config, path string) {
	cfg, err := Load(path)
	if err != nil {
		return
	}
	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
