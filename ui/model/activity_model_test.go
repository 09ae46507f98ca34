package model

import (
	"testing"
	"time"
)

func TestActivityModel_BasicLifecycle(t *testing.T) {
	m := NewActivityModel()
	base := time.Unix(0, 0)

	// Open a flow at t0 and keep it open for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	flow, total := m.Values()
	if flow < 5*time.Second || total < 5*time.Second {
		t.Fatalf("expected ~5s flow & total; got flow=%v total=%v", flow, total)
	}

	// Close the flow at 5s.
	m.OnTick(false, base.Add(5*time.Second))
	flow, total = m.Values()
	if flow < 5*time.Second || total < 5*time.Second {
		t.Fatalf("after close expected persisted 5s; got flow=%v total=%v", flow, total)
	}

	// Idle 2s (no change expected).
	m.OnTick(false, base.Add(7*time.Second))
	flow2, total2 := m.Values()
	if flow2 != flow || total2 != total {
		t.Fatalf("idle tick should not change durations: before flow=%v total=%v after flow=%v total=%v", flow, total, flow2, total2)
	}

	// Second flow at 10s lasting 3s.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	f3, t3 := m.Values()
	if f3 < 3*time.Second {
		t.Fatalf("second flow expected >=3s, got %v", f3)
	}
	if t3 < 8*time.Second { // 5 + 3 ongoing
		t.Fatalf("total should include previous 5s + current >=3s (>=8s); got %v", t3)
	}

	// Close the second flow finalizing totals (13s).
	m.OnTick(false, base.Add(13*time.Second))
	fFinal, tFinal := m.Values()
	if fFinal < 3*time.Second || tFinal < 8*time.Second {
		t.Fatalf("final expected flow >=3s total >=8s got flow=%v total=%v", fFinal, tFinal)
	}
}
