package adapters

import (
	"context"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"kernel-lifecycle/internal/ports"
)

const defaultWatchDebounce = 500 * time.Millisecond

// FileWatchAdapter watches a single file through its parent directory, since
// dpkg replaces its status file by rename rather than writing in place.
// Bursts of events are collapsed into one signal per debounce period.
type FileWatchAdapter struct {
	Debounce time.Duration
}

func NewFileWatchAdapter(debounce time.Duration) FileWatchAdapter {
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}
	return FileWatchAdapter{Debounce: debounce}
}

func (a FileWatchAdapter) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create file watcher").
			WithCause(err)
	}
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to watch directory").
			WithCause(err)
	}
	debounce := a.Debounce
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}
	changes := make(chan struct{}, 1)
	go a.loop(ctx, watcher, target, debounce, changes)
	return changes, nil
}

func (a FileWatchAdapter) loop(ctx context.Context, watcher *fsnotify.Watcher, target string, debounce time.Duration, changes chan<- struct{}) {
	defer close(changes)
	defer watcher.Close()

	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}
		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}
			select {
			case changes <- struct{}{}:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", target).Msg("file watch error")
		}
	}
}

var _ ports.ChangeWatcherPort = FileWatchAdapter{}
