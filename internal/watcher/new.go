package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
)

// New creates a new Watcher instance monitoring inboxDir
func New(inboxDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		// The pipeline admits one run at a time, so a single slot
		// serializes inbox files instead of processing them in parallel.
		slot: make(chan struct{}, 1),
	}, nil
}
