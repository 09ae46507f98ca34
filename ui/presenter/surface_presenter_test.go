package presenter

import (
	"image"
	"testing"
	"time"

	"imagewell/ui/model"
)

type mockWellView struct {
	images       int
	placeholders int
	last         image.Image
}

func (v *mockWellView) ShowImage(img image.Image) { v.images++; v.last = img }
func (v *mockWellView) ShowPlaceholder()          { v.placeholders++ }

func TestSurfacePresenter_RendersOnVersionChangeOnly(t *testing.T) {
	m := model.NewImageModel()
	view := &mockWellView{}
	p := NewSurfacePresenter(m, view)
	now := time.Now()

	// First tick renders the placeholder even though nothing changed yet.
	p.Tick(now)
	if view.placeholders != 1 || view.images != 0 {
		t.Fatalf("first tick: placeholders=%d images=%d", view.placeholders, view.images)
	}

	// Unchanged ticks are free.
	p.Tick(now)
	p.Tick(now)
	if view.placeholders != 1 || view.images != 0 {
		t.Fatalf("unchanged ticks re-rendered: placeholders=%d images=%d", view.placeholders, view.images)
	}

	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	m.Set(img)
	p.Tick(now)
	if view.images != 1 || view.last != image.Image(img) {
		t.Fatalf("assignment not rendered: images=%d", view.images)
	}

	m.Set(nil)
	p.Tick(now)
	if view.placeholders != 2 {
		t.Fatalf("clear not rendered as placeholder: placeholders=%d", view.placeholders)
	}
}

func TestSurfacePresenter_NilSafe(t *testing.T) {
	var p *SurfacePresenter
	p.Tick(time.Now())
	NewSurfacePresenter(nil, nil).Tick(time.Now())
}
