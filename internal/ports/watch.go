package ports

import "context"

// ChangeWatcherPort signals, after debouncing, that the watched package
// database changed. The channel is closed when ctx ends.
type ChangeWatcherPort interface {
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
