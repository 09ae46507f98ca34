package source

import (
	"image"
	"time"
)

// Item describes one gallery entry available for selection.
type Item struct {
	Ref       string // provider-specific reference; a file path for DirGallery
	Name      string
	SizeLabel string // humanized byte size for display
	ModTime   time.Time
}

// GalleryProvider enumerates a picture library and loads chosen entries.
// Load may be slow (large files, remote mounts) and is the only provider
// operation invoked off the UI thread.
type GalleryProvider interface {
	Items() ([]Item, error)
	Filter(query string) []Item
	Thumb(ref string) image.Image
	Load(ref string) (image.Image, error)
}

// CameraDevice abstracts still capture of a screen region.
type CameraDevice interface {
	Available() bool
	Bounds() image.Rectangle
	Capture(r image.Rectangle) (image.Image, error)
}

// ScopedImage is an acquired file resource. Release must be called exactly
// once on every exit path after a successful Acquire; Decode reads through
// the held handle.
type ScopedImage interface {
	Name() string
	Decode() (image.Image, error)
	Release()
}

// FileAccess acquires scoped access to an image file on disk.
type FileAccess interface {
	Acquire(path string) (ScopedImage, error)
}

// ClipboardDevice exposes the system clipboard's image slot.
// Changes delivers a signal whenever the platform reports new image
// content; the channel is shared and never closed while the device lives.
type ClipboardDevice interface {
	Available() bool
	HasImage() bool
	ReadImage() (image.Image, error)
	Changes() <-chan struct{}
}
