package presenter

import (
	"time"

	"imagewell/domain/selection"
	"imagewell/ui/model"
)

// MenuView renders the ordered source menu entries.
type MenuView interface {
	SetEntries(items []selection.MenuItem)
}

// MenuPresenter rebuilds the source menu whenever availability or value
// presence changes the entry list. Unchanged menus cost one comparison.
type MenuPresenter struct {
	src   selection.MenuSource
	model *model.MenuModel
	view  MenuView
}

func NewMenuPresenter(src selection.MenuSource, m *model.MenuModel, view MenuView) *MenuPresenter {
	return &MenuPresenter{src: src, model: m, view: view}
}

// Tick recomputes the menu and pushes it to the view only when it differs
// from the cached entries.
func (p *MenuPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.model == nil || p.view == nil {
		return
	}
	items := p.src.MenuItems()
	if p.model.Replace(items) {
		p.view.SetEntries(p.model.Items())
	}
}
