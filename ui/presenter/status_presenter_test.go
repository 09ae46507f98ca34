package presenter

import (
	"strings"
	"testing"
	"time"

	"imagewell/domain/selection"
	"imagewell/ui/model"
)

type mockStatusSource struct {
	state selection.State
	stats selection.Stats
}

func (s *mockStatusSource) Current() selection.State { return s.state }
func (s *mockStatusSource) Stats() selection.Stats   { return s.stats }

type mockStatusView struct {
	statusCalls   int
	activityCalls int
	status        string
	activity      string
	editableCalls int
	editable      bool
}

func (v *mockStatusView) SetStatus(t string)         { v.statusCalls++; v.status = t }
func (v *mockStatusView) SetActivity(t string)       { v.activityCalls++; v.activity = t }
func (v *mockStatusView) SetSettingsEditable(e bool) { v.editableCalls++; v.editable = e }

func TestStatusPresenter_PushesOnChangeOnly(t *testing.T) {
	src := &mockStatusSource{state: selection.StateIdle}
	view := &mockStatusView{}
	p := NewStatusPresenter(src, model.NewActivityModel(), view)
	base := time.Unix(1000, 0)

	p.Tick(base)
	if view.statusCalls != 1 || view.activityCalls != 1 {
		t.Fatalf("first tick: statusCalls=%d activityCalls=%d", view.statusCalls, view.activityCalls)
	}
	if !strings.Contains(view.status, "idle") || !strings.Contains(view.status, "never") {
		t.Fatalf("unexpected initial status %q", view.status)
	}

	p.Tick(base.Add(time.Second))
	if view.statusCalls != 1 {
		t.Fatalf("unchanged status re-pushed: calls=%d", view.statusCalls)
	}

	src.state = selection.StateGalleryBrowse
	p.Tick(base.Add(2 * time.Second))
	if view.statusCalls != 2 || !strings.Contains(view.status, "gallery-browse") {
		t.Fatalf("state change not reflected: calls=%d status=%q", view.statusCalls, view.status)
	}

	// While engaged, the activity durations advance and re-push the line.
	before := view.activityCalls
	p.Tick(base.Add(4 * time.Second))
	if view.activityCalls <= before {
		t.Fatalf("activity line did not advance while engaged")
	}
	if !strings.Contains(view.activity, "choosing 2s") {
		t.Fatalf("unexpected activity line %q", view.activity)
	}
}

func TestStatusPresenter_LocksSettingsWhileEngaged(t *testing.T) {
	src := &mockStatusSource{state: selection.StateIdle}
	view := &mockStatusView{}
	p := NewStatusPresenter(src, model.NewActivityModel(), view)
	base := time.Unix(2000, 0)

	p.Tick(base)
	if view.editableCalls != 1 || !view.editable {
		t.Fatalf("idle start: editableCalls=%d editable=%t", view.editableCalls, view.editable)
	}

	src.state = selection.StateFileBrowse
	p.Tick(base.Add(time.Second))
	if view.editableCalls != 2 || view.editable {
		t.Fatalf("engaged: editableCalls=%d editable=%t", view.editableCalls, view.editable)
	}

	// Staying engaged does not re-push.
	p.Tick(base.Add(2 * time.Second))
	if view.editableCalls != 2 {
		t.Fatalf("engaged steady state re-pushed: calls=%d", view.editableCalls)
	}

	src.state = selection.StateIdle
	p.Tick(base.Add(3 * time.Second))
	if view.editableCalls != 3 || !view.editable {
		t.Fatalf("back to idle: editableCalls=%d editable=%t", view.editableCalls, view.editable)
	}
}

func TestStatusPresenter_ShowsApplyAge(t *testing.T) {
	src := &mockStatusSource{
		state: selection.StateIdle,
		stats: selection.Stats{Applied: 1, LastApply: time.Now().Add(-3 * time.Minute)},
	}
	view := &mockStatusView{}
	p := NewStatusPresenter(src, model.NewActivityModel(), view)

	p.Tick(time.Now())
	if !strings.Contains(view.status, "ago") {
		t.Fatalf("apply age missing from status %q", view.status)
	}
}
