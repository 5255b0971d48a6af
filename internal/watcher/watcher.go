package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
)

// settleDelay gives the writer time to finish the file before the pipeline
// opens it. Create fires on the first byte, not the last.
const settleDelay = 500 * time.Millisecond

var audioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
}

type implWatcher struct {
	inboxDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	slot     chan struct{}
	wg       sync.WaitGroup
}

// Start begins monitoring the inbox directory for new audio files
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started. Monitoring: %s", w.inboxDir)
	w.logger.Info(ctx, "Supported formats: .wav, .mp3, .m4a, .flac, .ogg")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch hands one new audio file to the handler. It blocks until the
// single processing slot is free, so files dropped while a run is active
// queue up instead of racing the run gate.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	w.logger.Info(ctx, "New audio detected: %s", path)

	// Small delay to ensure the file is fully written
	time.Sleep(settleDelay)

	select {
	case w.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.slot }()

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isAudioFile checks if the file has a supported audio extension
func (w *implWatcher) isAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}
