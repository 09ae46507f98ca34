package source

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenCamera captures still images of screen regions. Availability is a
// static capability: probed once at construction, since the display either
// supports capture for the process lifetime or it does not.
type ScreenCamera struct {
	bounds    image.Rectangle
	available bool
}

// NewScreenCamera probes the screen once and returns the device.
func NewScreenCamera() *ScreenCamera {
	c := &ScreenCamera{}
	if r, err := screenshot.ScreenRect(); err == nil && !r.Empty() {
		c.bounds = r
		c.available = true
	}
	return c
}

func (c *ScreenCamera) Available() bool { return c.available }

func (c *ScreenCamera) Bounds() image.Rectangle { return c.bounds }

// Capture grabs the requested region, clamped to the screen.
func (c *ScreenCamera) Capture(r image.Rectangle) (image.Image, error) {
	if !c.available {
		return nil, fmt.Errorf("screen capture unavailable")
	}
	region, ok := ClampRegion(r, c.bounds)
	if !ok {
		return nil, fmt.Errorf("capture region %v outside screen %v", r, c.bounds)
	}
	img, err := screenshot.CaptureRect(region)
	if err != nil {
		return nil, fmt.Errorf("capture %v: %w", region, err)
	}
	return img, nil
}

var _ CameraDevice = (*ScreenCamera)(nil)
