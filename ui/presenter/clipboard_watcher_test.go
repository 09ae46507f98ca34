package presenter

import (
	"sync"
	"testing"
	"time"
)

type mockRefresher struct {
	mu    sync.Mutex
	calls int
}

func (r *mockRefresher) RefreshClipboard() {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
}

func (r *mockRefresher) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func waitForCalls(t *testing.T, r *mockRefresher, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if r.Calls() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d refresh calls, have %d", want, r.Calls())
}

func TestClipboardWatcher_ForwardsChangeSignals(t *testing.T) {
	ctrl := &mockRefresher{}
	ch := make(chan struct{}, 1)
	w := NewClipboardWatcher(ctrl, nil, ch)
	w.Start()
	defer w.Stop()

	ch <- struct{}{}
	waitForCalls(t, ctrl, 1)
	ch <- struct{}{}
	waitForCalls(t, ctrl, 2)
}

func TestClipboardWatcher_RepollsWithoutSignals(t *testing.T) {
	ctrl := &mockRefresher{}
	w := NewClipboardWatcher(ctrl, nil, nil)
	w.interval = 30 * time.Millisecond
	w.Start()
	defer w.Stop()

	waitForCalls(t, ctrl, 2)
}

func TestClipboardWatcher_StartStopIdempotent(t *testing.T) {
	w := NewClipboardWatcher(&mockRefresher{}, nil, nil)
	w.Start()
	w.Start()
	w.Stop()
	w.Stop()
}
