package view

import (
	"fmt"
	"log/slog"
	"strings"

	"imagewell/config"
	"imagewell/domain/source"
	"imagewell/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// GalleryBrowser lets the user pick from the pictures listing with live
// fuzzy filtering. Picking or cancelling closes the window; the outcome is
// reported through the callbacks.
type GalleryBrowser interface {
	Open()
	Close()
}

type galleryBrowser struct {
	logger    *slog.Logger
	provider  source.GalleryProvider
	maxItems  int
	onPick    func(ref string)
	onDismiss func()

	win        *ToplevelWidget
	filter     *TextWidget
	listFrame  *FrameWidget
	itemLabels []*LabelWidget
	itemBtns   []*ButtonWidget
	photos     []*Img
}

// NewGalleryBrowser creates the browser manager over the gallery provider.
func NewGalleryBrowser(provider source.GalleryProvider, cfg *config.Config, logger *slog.Logger, onPick func(string), onDismiss func()) GalleryBrowser {
	maxItems := 12
	if cfg != nil && cfg.BrowserMaxItems > 0 {
		maxItems = cfg.BrowserMaxItems
	}
	return &galleryBrowser{logger: logger, provider: provider, maxItems: maxItems, onPick: onPick, onDismiss: onDismiss}
}

func (b *galleryBrowser) Open() {
	if b == nil {
		return
	}
	if b.win != nil {
		WmGeometry(b.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Photo Library")
	b.win = win
	WmAttributes(win.Window, "-topmost", 1)
	GridColumnConfigure(win.Window, 1, Weight(1))

	lbl := win.Label(Txt("Filter:"), Anchor("w"))
	Grid(lbl, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	b.filter = win.Text(Height(1), Width(24))
	Grid(b.filter, Row(0), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(b.dismiss))
	Grid(cancel, Row(0), Column(2), Sticky("e"), Padx("0.4m"), Pady("0.3m"))

	b.listFrame = win.Frame()
	Grid(b.listFrame, Row(1), Column(0), Columnspan(3), Sticky("nsew"), Padx("0.4m"), Pady("0.3m"))

	Bind(b.filter, "<KeyRelease>", Command(func() { b.refresh() }))
	Bind(win, "<Escape>", Command(b.dismiss))
	b.refresh()
}

// refresh rebuilds the listing from the current filter text.
func (b *galleryBrowser) refresh() {
	if b == nil || b.win == nil || b.provider == nil {
		return
	}
	query := strings.TrimSpace(b.filterText())
	var items []source.Item
	if query == "" {
		listed, err := b.provider.Items()
		if err != nil {
			if b.logger != nil {
				b.logger.Error("gallery listing failed", "error", err)
			}
			listed = nil
		}
		items = listed
	} else {
		items = b.provider.Filter(query)
	}
	if len(items) > b.maxItems {
		items = items[:b.maxItems]
	}
	b.clearRows()
	if len(items) == 0 {
		empty := b.win.Label(Txt("No matching images"), Anchor("w"))
		Grid(empty, In(b.listFrame), Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
		b.itemLabels = append(b.itemLabels, empty)
		return
	}
	for i, it := range items {
		ref := it.Ref
		if thumb := b.provider.Thumb(ref); thumb != nil {
			photo := NewPhoto(Data(images.EncodePNG(thumb)))
			b.photos = append(b.photos, photo)
			tl := b.win.Label(Image(photo), Borderwidth(1), Relief("sunken"))
			Grid(tl, In(b.listFrame), Row(i), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.1m"))
			b.itemLabels = append(b.itemLabels, tl)
		}
		btn := b.win.Button(
			Txt(fmt.Sprintf("%s  (%s)", it.Name, it.SizeLabel)),
			Command(func() { b.pick(ref) }),
		)
		Grid(btn, In(b.listFrame), Row(i), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.1m"))
		b.itemBtns = append(b.itemBtns, btn)
	}
}

func (b *galleryBrowser) filterText() string {
	if b.filter == nil {
		return ""
	}
	parts := b.filter.Get("1.0", END)
	return strings.Join(parts, "")
}

// clearRows destroys the previous listing widgets and their photos.
func (b *galleryBrowser) clearRows() {
	for _, w := range b.itemLabels {
		Destroy(w)
	}
	b.itemLabels = nil
	for _, w := range b.itemBtns {
		Destroy(w)
	}
	b.itemBtns = nil
	for _, p := range b.photos {
		p.Delete()
	}
	b.photos = nil
}

func (b *galleryBrowser) pick(ref string) {
	b.Close()
	if b.onPick != nil {
		b.onPick(ref)
	}
}

func (b *galleryBrowser) dismiss() {
	b.Close()
	if b.onDismiss != nil {
		b.onDismiss()
	}
}

func (b *galleryBrowser) Close() {
	if b == nil || b.win == nil {
		return
	}
	for _, p := range b.photos {
		p.Delete()
	}
	b.photos = nil
	b.itemLabels = nil
	b.itemBtns = nil
	b.filter = nil
	b.listFrame = nil
	Destroy(b.win)
	b.win = nil
}
