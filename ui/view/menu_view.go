package view

import (
	"log/slog"

	"imagewell/domain/selection"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SourceMenu shows the ordered action popup. Entries are replaced by the
// menu presenter; an already-open popup keeps the snapshot it was built
// from, the controller guards against stale actions.
type SourceMenu interface {
	SetEntries(items []selection.MenuItem)
	Open()
}

type sourceMenu struct {
	logger   *slog.Logger
	onAction func(selection.Action)
	onOpen   func() // availability refresh hook fired on each open

	// entries are written on UI ticks and read on open; both run on the Tk
	// thread, so no synchronization is needed.
	entries []selection.MenuItem
	win     *ToplevelWidget
}

// NewSourceMenu creates the popup manager. onAction receives the chosen
// action after the popup closed; onOpen may be nil.
func NewSourceMenu(logger *slog.Logger, onAction func(selection.Action), onOpen func()) SourceMenu {
	return &sourceMenu{logger: logger, onAction: onAction, onOpen: onOpen}
}

func (m *sourceMenu) SetEntries(items []selection.MenuItem) {
	if m == nil {
		return
	}
	m.entries = items
}

func (m *sourceMenu) Open() {
	if m == nil {
		return
	}
	if m.onOpen != nil {
		m.onOpen()
	}
	if m.win != nil {
		WmGeometry(m.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(1))
	win.WmTitle("Choose Image Source")
	m.win = win
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	GridColumnConfigure(win.Window, 0, Weight(1))
	for i, it := range m.entries {
		action := it.Action
		btn := win.Button(Txt(it.Label), Command(func() { m.choose(action) }))
		Grid(btn, Row(i), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	}
	Bind(win, "<Escape>", Command(m.close))
	if m.logger != nil {
		m.logger.Debug("source menu opened", "entries", len(m.entries))
	}
}

func (m *sourceMenu) choose(action selection.Action) {
	m.close()
	if m.onAction != nil {
		m.onAction(action)
	}
}

func (m *sourceMenu) close() {
	if m.win != nil {
		Destroy(m.win)
		m.win = nil
	}
}
