package view

import (
	"image"
	"log/slog"

	"imagewell/config"
	"imagewell/domain/selection"
	"imagewell/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for
// presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Well     PickerWell
	Menu     SourceMenu
	Settings SettingsPanel
	Gallery  GalleryBrowser
	Camera   CameraOverlay
	Files    FileBrowser

	// Widgets
	StatusLabel   *LabelWidget
	ActivityLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	ShowImage(img image.Image)
	ShowPlaceholder()
	SetEntries(items []selection.MenuItem)
	SetStatus(text string)
	SetActivity(text string)
	SetSettingsEditable(enabled bool)
	Present(kind selection.PresentKind)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout and wires the selection controller callbacks
// into the subviews. placeholderPNG renders in the well while no value is
// bound.
func (rv *RootView) Build(ctrl selection.ControllerContract, sources selection.Sources, placeholderPNG []byte, onExit func()) {
	if rv == nil || ctrl == nil {
		return
	}
	// Row 0: status label plus the exit button frame.
	rv.StatusLabel = Label(Txt("State: idle"), Anchor("w"), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, Row(0), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: activity durations and counters.
	rv.ActivityLabel = Label(Txt(""), Anchor("w"), Style(theme.StyleMutedLabel))
	Grid(rv.ActivityLabel, Row(1), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.15m"))

	// Row 2: the well with its menu trigger.
	rv.Menu = NewSourceMenu(rv.logger, ctrl.Dispatch, ctrl.RefreshClipboard)
	rv.Well = NewPickerWell(2, rv.cfg, placeholderPNG, "Choose Image", rv.Menu.Open)

	// Settings rows; locked while a selection flow is open.
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger)
	rv.Settings.Build(3)

	// Modal surfaces, opened on demand by the update loop.
	rv.Gallery = NewGalleryBrowser(sources.Gallery, rv.cfg, rv.logger, ctrl.EventGalleryPicked, ctrl.EventDismissed)
	rv.Camera = NewCameraOverlay(sources.Camera, rv.logger, ctrl.EventCameraConfirmed, ctrl.EventDismissed)
	rv.Files = NewFileBrowser("", rv.cfg, rv.logger, ctrl.EventFilePicked, ctrl.EventDismissed)

	GridColumnConfigure(App, 0, Weight(1))
}

// ShowImage proxies to the well.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Well != nil {
		rv.Well.ShowImage(img)
	}
}

// ShowPlaceholder proxies to the well.
func (rv *RootView) ShowPlaceholder() {
	if rv != nil && rv.Well != nil {
		rv.Well.ShowPlaceholder()
	}
}

// SetEntries proxies to the source menu.
func (rv *RootView) SetEntries(items []selection.MenuItem) {
	if rv != nil && rv.Menu != nil {
		rv.Menu.SetEntries(items)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetActivity updates the activity line.
func (rv *RootView) SetActivity(text string) {
	if rv != nil && rv.ActivityLabel != nil {
		rv.ActivityLabel.Configure(Txt(text))
	}
}

// SetSettingsEditable toggles settings panel editability.
func (rv *RootView) SetSettingsEditable(enabled bool) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetEditable(enabled)
	}
}

// Present opens the requested modal surface.
func (rv *RootView) Present(kind selection.PresentKind) {
	if rv == nil {
		return
	}
	switch kind {
	case selection.PresentGallery:
		if rv.Gallery != nil {
			rv.Gallery.Open()
		}
	case selection.PresentCamera:
		if rv.Camera != nil {
			rv.Camera.Open()
		}
	case selection.PresentFiles:
		if rv.Files != nil {
			rv.Files.Open()
		}
	}
}

// CloseSurfaces closes any open modal surface without reporting a
// dismissal, used during shutdown.
func (rv *RootView) CloseSurfaces() {
	if rv == nil {
		return
	}
	if rv.Gallery != nil {
		rv.Gallery.Close()
	}
	if rv.Camera != nil {
		rv.Camera.Close()
	}
	if rv.Files != nil {
		rv.Files.Close()
	}
}

var _ UI = (*RootView)(nil)
