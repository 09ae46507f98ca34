package selection

import (
	"sync/atomic"
	"time"
)

// counters instruments controller activity with lock-free counters updated
// from the event loop and read by the status presenter.
type counters struct {
	dispatched atomic.Uint64
	applied    atomic.Uint64
	cleared    atomic.Uint64
	cancelled  atomic.Uint64
	failed     atomic.Uint64
	superseded atomic.Uint64
	loads      atomic.Uint64
	loadNanos  atomic.Uint64
	lastApply  atomic.Int64 // unix nanos, 0 = never
}

// Stats summarises controller behaviour for instrumentation.
type Stats struct {
	Dispatched uint64
	Applied    uint64
	Cleared    uint64
	Cancelled  uint64
	Failed     uint64
	Superseded uint64
	AvgLoad    time.Duration
	LastApply  time.Time
	SinceApply time.Duration
}

func (c *counters) recordLoad(elapsed time.Duration) {
	c.loads.Add(1)
	c.loadNanos.Add(uint64(elapsed.Nanoseconds()))
}

func (c *counters) recordApply(now time.Time) {
	c.applied.Add(1)
	c.lastApply.Store(now.UnixNano())
}

func (c *counters) snapshot() Stats {
	loads := c.loads.Load()
	total := c.loadNanos.Load()
	var avg time.Duration
	if loads > 0 {
		avg = time.Duration(total / loads)
	}
	s := Stats{
		Dispatched: c.dispatched.Load(),
		Applied:    c.applied.Load(),
		Cleared:    c.cleared.Load(),
		Cancelled:  c.cancelled.Load(),
		Failed:     c.failed.Load(),
		Superseded: c.superseded.Load(),
		AvgLoad:    avg,
	}
	if ns := c.lastApply.Load(); ns > 0 {
		s.LastApply = time.Unix(0, ns)
		s.SinceApply = time.Since(s.LastApply)
	}
	return s
}
