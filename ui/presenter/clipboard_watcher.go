package presenter

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// ClipboardRefresher narrows the controller contract needed by the watcher.
type ClipboardRefresher interface{ RefreshClipboard() }

// ClipboardWatcher forwards system clipboard change signals to the
// controller so menu availability stays fresh. A periodic re-poll covers
// devices that cannot signal changes.
type ClipboardWatcher struct {
	Ctrl    ClipboardRefresher
	Logger  *slog.Logger
	changes <-chan struct{}

	interval time.Duration
	running  atomic.Bool
	done     chan struct{}
}

// NewClipboardWatcher constructs a watcher over the device change channel.
// changes may be nil; the watcher then relies on the re-poll interval alone.
func NewClipboardWatcher(ctrl ClipboardRefresher, logger *slog.Logger, changes <-chan struct{}) *ClipboardWatcher {
	return &ClipboardWatcher{Ctrl: ctrl, Logger: logger, changes: changes, interval: 2 * time.Second}
}

// Start begins watching. Idempotent.
func (w *ClipboardWatcher) Start() {
	if w == nil || w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop()
}

// Stop ends watching. Idempotent.
func (w *ClipboardWatcher) Stop() {
	if w == nil || !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

func (w *ClipboardWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	changes := w.changes
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				// device went away; keep re-polling
				changes = nil
				continue
			}
			w.refresh()
			if w.Logger != nil {
				w.Logger.Debug("clipboard change observed")
			}
		case <-ticker.C:
			w.refresh()
		case <-w.done:
			return
		}
	}
}

func (w *ClipboardWatcher) refresh() {
	if w.Ctrl == nil {
		return
	}
	w.Ctrl.RefreshClipboard()
}
