package presenter

import (
	"testing"

	"imagewell/domain/selection"
)

type mockRequests struct{ kinds []selection.PresentKind }

func (m *mockRequests) TakePresentation() (selection.PresentKind, bool) {
	if len(m.kinds) == 0 {
		return 0, false
	}
	k := m.kinds[0]
	m.kinds = m.kinds[1:]
	return k, true
}

func TestLoop_OpensRequestedSurfacesAndReschedules(t *testing.T) {
	var opened []selection.PresentKind
	scheduled := 0
	l := NewLoop(nil, nil, nil,
		&mockRequests{kinds: []selection.PresentKind{selection.PresentCamera}},
		func(k selection.PresentKind) { opened = append(opened, k) },
		func() { scheduled++ },
	)

	l.Tick()
	l.Tick()
	if len(opened) != 1 || opened[0] != selection.PresentCamera {
		t.Fatalf("opened=%v, want exactly one camera surface", opened)
	}
	if scheduled != 2 {
		t.Fatalf("scheduled=%d, want 2", scheduled)
	}
}

func TestLoop_NilSafe(t *testing.T) {
	var l *Loop
	l.Tick()
	NewLoop(nil, nil, nil, nil, nil, nil).Tick()
}
