package presenter

import (
	"image"
	"time"

	"imagewell/ui/model"
)

// WellView displays the bound image or the empty placeholder.
type WellView interface {
	ShowImage(img image.Image)
	ShowPlaceholder()
}

// SurfacePresenter reflects the bound value into the well view. It renders
// on version changes only, so identical ticks are free.
type SurfacePresenter struct {
	model *model.ImageModel
	view  WellView

	lastVersion uint64
	rendered    bool
}

func NewSurfacePresenter(m *model.ImageModel, view WellView) *SurfacePresenter {
	return &SurfacePresenter{model: m, view: view}
}

// Tick renders the current value when it changed since the last render.
// The first tick always renders so the placeholder shows on startup.
func (p *SurfacePresenter) Tick(now time.Time) {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	img, ver := p.model.Snapshot()
	if p.rendered && ver == p.lastVersion {
		return
	}
	p.lastVersion = ver
	p.rendered = true
	if img == nil {
		p.view.ShowPlaceholder()
		return
	}
	p.view.ShowImage(img)
}
