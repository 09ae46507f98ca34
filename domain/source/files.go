package source

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// DiskAccess implements FileAccess over the local filesystem. Acquire opens
// the file and hands back a ScopedImage whose Release closes it; the pairing
// mirrors platform scoped-resource APIs so callers keep a strict
// acquire/decode/release discipline.
type DiskAccess struct {
	logger *slog.Logger
}

func NewDiskAccess(logger *slog.Logger) *DiskAccess {
	return &DiskAccess{logger: logger}
}

func (d *DiskAccess) Acquire(path string) (ScopedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return nil, fmt.Errorf("acquire %s: %w", path, err)
	}
	return &scopedFile{f: f, logger: d.logger}, nil
}

type scopedFile struct {
	f        *os.File
	logger   *slog.Logger
	released atomic.Bool
}

func (s *scopedFile) Name() string { return filepath.Base(s.f.Name()) }

func (s *scopedFile) Decode() (image.Image, error) {
	img, err := DecodeImage(s.f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Name(), err)
	}
	return img, nil
}

// Release closes the handle. Safe to call more than once; only the first
// call closes.
func (s *scopedFile) Release() {
	if s.released.Swap(true) {
		if s.logger != nil {
			s.logger.Warn("duplicate release", "file", s.Name())
		}
		return
	}
	_ = s.f.Close()
}

var _ FileAccess = (*DiskAccess)(nil)
var _ ScopedImage = (*scopedFile)(nil)
