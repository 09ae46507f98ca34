//go:build !windows

package debug

// The RSS probe uses a Windows API; elsewhere the goroutine logger already
// covers the heap side, so this is a no-op.

import (
	"log/slog"
	"time"
)

func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
