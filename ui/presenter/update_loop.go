package presenter

import (
	"time"

	"imagewell/domain/selection"
)

// PresentationSource hands out pending modal surface requests.
type PresentationSource interface {
	TakePresentation() (selection.PresentKind, bool)
}

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters, opens requested modal surfaces and
// invokes a scheduler callback. The zero value is usable (methods are
// nil-safe).
type Loop struct {
	Surface  *SurfacePresenter
	Menu     *MenuPresenter
	Status   *StatusPresenter
	Requests PresentationSource
	Present  func(selection.PresentKind)
	Schedule func()
}

func NewLoop(surface *SurfacePresenter, menu *MenuPresenter, status *StatusPresenter, requests PresentationSource, present func(selection.PresentKind), schedule func()) *Loop {
	return &Loop{Surface: surface, Menu: menu, Status: status, Requests: requests, Present: present, Schedule: schedule}
}

// Tick runs one UI update pass. Modal requests are drained after the
// sub-presenters so a freshly opened surface sees current view state.
func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Surface != nil {
		l.Surface.Tick(now)
	}
	if l.Menu != nil {
		l.Menu.Tick(now)
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Requests != nil && l.Present != nil {
		if kind, ok := l.Requests.TakePresentation(); ok {
			l.Present(kind)
		}
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
