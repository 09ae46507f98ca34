package model

import (
	"time"
)

// ActivityModel tracks how long the current selection flow has been open and
// the accumulated time spent choosing across flows. It is decoupled from the
// UI; presenters should poll Values() and update views. The zero value is
// ready to use.
type ActivityModel struct {
	engaged          bool
	flowStart        time.Time
	lastFlowDuration time.Duration
	accumulated      time.Duration
}

// NewActivityModel returns a pointer to a ready-to-use ActivityModel.
func NewActivityModel() *ActivityModel { return &ActivityModel{} }

// OnTick updates the model using the current engagement state and timestamp.
// Engaged means a selection flow is open (any non-idle state). Call
// periodically, for example from a presenter tick.
func (m *ActivityModel) OnTick(engaged bool, now time.Time) {
	if m == nil {
		return
	}
	if engaged {
		if !m.engaged { // transition idle -> flow
			m.engaged = true
			m.flowStart = now
			m.lastFlowDuration = 0
		}
		m.lastFlowDuration = now.Sub(m.flowStart)
	} else if m.engaged { // transition flow -> idle
		m.lastFlowDuration = now.Sub(m.flowStart)
		m.accumulated += m.lastFlowDuration
		m.engaged = false
	}
}

// Values returns the current flow duration and the total time spent in
// flows. The total includes the ongoing flow while engaged.
func (m *ActivityModel) Values() (flow, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	flow = m.lastFlowDuration
	total = m.accumulated
	if m.engaged {
		total += flow
	}
	return
}
