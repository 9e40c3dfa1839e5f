package source

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the input file watcher.
type WatcherConfig struct {
	// Paths are the concrete input files to watch.
	Paths []string

	// DebounceDelay is how long to wait for more changes before firing.
	DebounceDelay time.Duration

	// Logger for watch events.
	Logger *slog.Logger
}

// Watcher watches source CSV files and emits a signal after changes settle.
// CSV exports tend to arrive as bursts of writes, so events are debounced
// into a single notification.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]struct{}

	changes chan []string
}

// NewWatcher creates a watcher over the given input files.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 500 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]struct{}),
		changes: make(chan []string, 1),
	}, nil
}

// Changes returns the channel of settled change notifications. Each value
// is the set of inputs that changed since the previous notification.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Start begins watching. The parent directories are watched rather than the
// files themselves so that replace-by-rename exports are still observed.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]bool)
	files := make(map[string]bool)
	for _, p := range w.config.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx, files)

	w.logger.Info("Input watcher started",
		"files", len(files),
		"debounce", w.config.DebounceDelay)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context, files map[string]bool) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !files[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.pendingMu.Lock()
			w.pending[abs] = struct{}{}
			w.pendingMu.Unlock()

			if timer == nil {
				timer = time.NewTimer(w.config.DebounceDelay)
			} else {
				timer.Reset(w.config.DebounceDelay)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.pendingMu.Lock()
			changed := make([]string, 0, len(w.pending))
			for p := range w.pending {
				changed = append(changed, p)
			}
			w.pending = make(map[string]struct{})
			w.pendingMu.Unlock()

			if len(changed) == 0 {
				continue
			}
			w.logger.Debug("Inputs changed", "files", changed)

			select {
			case w.changes <- changed:
			default:
				// A notification is already pending; the consumer will
				// re-read everything anyway.
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}
