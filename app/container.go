package app

import (
	"log/slog"

	"imagewell/assets"
	"imagewell/config"
	"imagewell/domain/selection"
	"imagewell/domain/source"
	"imagewell/ui/model"
	"imagewell/ui/presenter"
	"imagewell/ui/view"
)

// AppContainer assembles models, source devices, the selection controller,
// presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	CfgPath string

	Image    *model.ImageModel
	Menu     *model.MenuModel
	Activity *model.ActivityModel

	Sources    selection.Sources
	Controller selection.ControllerContract

	RootView *view.RootView
	UI       view.UI

	// Presenters
	SurfacePresenter *presenter.SurfacePresenter
	MenuPresenter    *presenter.MenuPresenter
	StatusPresenter  *presenter.StatusPresenter
	Clipboard        *presenter.ClipboardWatcher
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. Side effects are limited to
// asset checking and source device probing (camera bounds, clipboard init,
// gallery watcher).
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, CfgPath: cfgPath}
	if _, err := assets.PlaceholderImage(); err != nil && logger != nil {
		logger.Error("placeholder asset unusable", "error", err)
	}
	c.Image = model.NewImageModel()
	c.Menu = model.NewMenuModel()
	c.Activity = model.NewActivityModel()

	gallery := source.NewDirGallery(cfg.GalleryDir, cfg.ThumbnailLongEdge, cfg.ThumbnailCacheEntries, logger)
	clip := source.NewSystemClipboard(logger)
	c.Sources = selection.Sources{
		Gallery:   gallery,
		Camera:    source.NewScreenCamera(),
		Files:     source.NewDiskAccess(logger),
		Clipboard: clip,
	}
	c.Controller = selection.NewController(c.Image, c.Sources, logger)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	// Presenters; the Loop is wired by the app wrapper once the Tk
	// scheduler callback exists.
	c.SurfacePresenter = presenter.NewSurfacePresenter(c.Image, c.RootView)
	c.MenuPresenter = presenter.NewMenuPresenter(c.Controller, c.Menu, c.RootView)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Controller, c.Activity, c.RootView)
	c.Clipboard = presenter.NewClipboardWatcher(c.Controller, logger, clip.Changes())
	return c
}

// Shutdown stops background goroutines and closes the source devices.
func (c *AppContainer) Shutdown() {
	if c == nil {
		return
	}
	if c.Clipboard != nil {
		c.Clipboard.Stop()
	}
	if c.Controller != nil {
		c.Controller.Close()
	}
	if g, ok := c.Sources.Gallery.(*source.DirGallery); ok && g != nil {
		g.Close()
	}
	if s, ok := c.Sources.Clipboard.(*source.SystemClipboard); ok && s != nil {
		s.Close()
	}
}
