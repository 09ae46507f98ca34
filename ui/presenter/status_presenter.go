package presenter

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"imagewell/domain/selection"
	"imagewell/ui/model"
)

// StatusSource narrows the controller contract the status row needs.
type StatusSource interface {
	Current() selection.State
	Stats() selection.Stats
}

// StatusView displays the flow state line and the activity line, and locks
// the settings form while a flow is open.
type StatusView interface {
	SetStatus(text string)
	SetActivity(text string)
	SetSettingsEditable(enabled bool)
}

// StatusPresenter formats flow state, apply age and activity durations for
// the status rows, and keeps the settings form editable only while idle.
// Lines are pushed only when their text changes.
type StatusPresenter struct {
	src      StatusSource
	activity *model.ActivityModel
	view     StatusView

	lastStatus   string
	lastActivity string
	editable     bool
	editablePush bool
}

func NewStatusPresenter(src StatusSource, activity *model.ActivityModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{src: src, activity: activity, view: view}
}

// Tick advances the activity model and refreshes both status lines.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.activity == nil || p.view == nil {
		return
	}
	st := p.src.Current()
	p.activity.OnTick(st != selection.StateIdle, now)

	if editable := st == selection.StateIdle; !p.editablePush || editable != p.editable {
		p.editable = editable
		p.editablePush = true
		p.view.SetSettingsEditable(editable)
	}

	stats := p.src.Stats()
	applyAge := "never"
	if !stats.LastApply.IsZero() {
		applyAge = humanize.Time(stats.LastApply)
	}
	status := fmt.Sprintf("State: %s | applied %s", st.String(), applyAge)
	if status != p.lastStatus {
		p.lastStatus = status
		p.view.SetStatus(status)
	}

	flow, total := p.activity.Values()
	activity := fmt.Sprintf("choosing %s | total %s | ok %d | failed %d | cancelled %d",
		flow.Round(time.Second), total.Round(time.Second), stats.Applied, stats.Failed, stats.Cancelled)
	if activity != p.lastActivity {
		p.lastActivity = activity
		p.view.SetActivity(activity)
	}
}
