package model

import (
	"imagewell/domain/selection"
)

// MenuModel caches the menu entries the UI last rendered. No synchronization
// needed: updates and reads both occur on the UI thread tick.
type MenuModel struct {
	items []selection.MenuItem
}

func NewMenuModel() *MenuModel { return &MenuModel{} }

// Replace swaps in a freshly built menu and reports whether it differs from
// the cached one, so callers can skip rebuilding identical popups.
func (m *MenuModel) Replace(items []selection.MenuItem) bool {
	if m == nil {
		return false
	}
	if equalItems(m.items, items) {
		return false
	}
	m.items = append(m.items[:0], items...)
	return true
}

// Items returns the cached entries in display order.
func (m *MenuModel) Items() []selection.MenuItem {
	if m == nil {
		return nil
	}
	out := make([]selection.MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

func equalItems(a, b []selection.MenuItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
