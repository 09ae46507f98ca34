package model

import (
	"testing"

	"imagewell/domain/selection"
)

func TestMenuModel_ReplaceDetectsChange(t *testing.T) {
	m := NewMenuModel()
	base := selection.BuildMenu(selection.Availability{}, false)

	if !m.Replace(base) {
		t.Fatalf("first replace should report a change")
	}
	if m.Replace(base) {
		t.Fatalf("identical replace should report no change")
	}

	withClear := selection.BuildMenu(selection.Availability{}, true)
	if !m.Replace(withClear) {
		t.Fatalf("replace with extra entry should report a change")
	}
	if got, want := len(m.Items()), len(withClear); got != want {
		t.Fatalf("cached %d items, want %d", got, want)
	}
}

func TestMenuModel_ItemsReturnsCopy(t *testing.T) {
	m := NewMenuModel()
	m.Replace(selection.BuildMenu(selection.Availability{Camera: true}, false))

	items := m.Items()
	items[0].Label = "mutated"
	if m.Items()[0].Label == "mutated" {
		t.Fatalf("Items leaked internal slice")
	}
}
