package source

import (
	"context"
	"image"
	"log/slog"
	"sync"

	"golang.design/x/clipboard"
)

// SystemClipboard adapts the desktop clipboard's image slot. The underlying
// library may only be initialized once per process; initialization failure
// marks the device unavailable rather than failing construction, so hosts
// on headless or unsupported displays degrade to a menu without paste.
type SystemClipboard struct {
	logger    *slog.Logger
	available bool
	changes   chan struct{}
	cancel    context.CancelFunc
}

var clipInit struct {
	once sync.Once
	err  error
}

func initClipboard() error {
	clipInit.once.Do(func() { clipInit.err = clipboard.Init() })
	return clipInit.err
}

func NewSystemClipboard(logger *slog.Logger) *SystemClipboard {
	s := &SystemClipboard{logger: logger, changes: make(chan struct{}, 1)}
	if err := initClipboard(); err != nil {
		if logger != nil {
			logger.Warn("clipboard unavailable", "error", err)
		}
		return s
	}
	s.available = true
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.forward(ctx)
	return s
}

// forward coalesces platform change notifications into the signal channel.
func (s *SystemClipboard) forward(ctx context.Context) {
	ch := clipboard.Watch(ctx, clipboard.FmtImage)
	for range ch {
		select {
		case s.changes <- struct{}{}:
		default:
		}
	}
}

func (s *SystemClipboard) Available() bool { return s.available }

func (s *SystemClipboard) HasImage() bool {
	if !s.available {
		return false
	}
	return len(clipboard.Read(clipboard.FmtImage)) > 0
}

func (s *SystemClipboard) ReadImage() (image.Image, error) {
	if !s.available {
		return nil, ErrNoImage
	}
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	return DecodeImageBytes(data)
}

func (s *SystemClipboard) Changes() <-chan struct{} { return s.changes }

// Close stops the watch goroutine. The device stays readable afterwards.
func (s *SystemClipboard) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

var _ ClipboardDevice = (*SystemClipboard)(nil)
