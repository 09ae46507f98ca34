package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"imagewell/assets"
	"imagewell/config"
	"imagewell/debug"
	"imagewell/ui/presenter"
	"imagewell/ui/theme"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	cfgPath string
	width   int
	height  int
	afterID string

	container *AppContainer
}

// NewApp prepares the top-level window. The Tk main loop starts in Start.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, cfgPath string) *app {
	a := &app{cfg: cfg, logger: logger, cfgPath: cfgPath, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the container, wires the presenter loop onto the Tk
// scheduler and blocks in the Tk main loop until exit.
func (a *app) Start() {
	theme.InitStyles()

	a.container = BuildContainer(a.cfg, a.logger, a.cfgPath)
	c := a.container
	c.RootView.Build(c.Controller, c.Sources, assets.PlaceholderPNG, a.exitHandler)

	c.Loop = presenter.NewLoop(
		c.SurfacePresenter,
		c.MenuPresenter,
		c.StatusPresenter,
		c.Controller,
		c.RootView.Present,
		a.scheduleUpdate,
	)

	// Availability refresh hooks: once now for the initial mount, on every
	// return to foreground, and on clipboard change signals.
	Bind(App, "<FocusIn>", Command(func() { c.Controller.EventActivated() }))
	c.Clipboard.Start()
	c.Controller.EventActivated()

	if a.cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, a.logger)
		debug.StartMemLogger(5*time.Second, a.logger)
	}

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.container != nil {
		a.container.RootView.CloseSurfaces()
		a.container.Shutdown()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}
