package watcher

import "context"

// Watcher defines the interface for inbox monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles a newly dropped audio file
type EventHandler func(ctx context.Context, filePath string) error
