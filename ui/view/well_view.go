package view

import (
	"image"

	"imagewell/config"
	"imagewell/ui/images"
	"imagewell/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PickerWell displays the currently bound image (or the placeholder) and
// hosts the trigger button that opens the source menu.
type PickerWell interface {
	ShowImage(img image.Image)
	ShowPlaceholder()
}

type pickerWell struct {
	imageLabel     *LabelWidget
	prevPhoto      *Img // last Tk photo image instance shown in the well
	maxW           int
	maxH           int
	placeholderPNG []byte
}

// NewPickerWell creates the well label and the trigger button, grids them
// and returns the view. The trigger label is chosen by the host; the menu
// entry texts are not. Layout: the well spans columns 0-3; the trigger
// frame sits at column 4 of the provided row.
func NewPickerWell(row int, cfg *config.Config, placeholderPNG []byte, triggerText string, onOpenMenu func()) PickerWell {
	maxW, maxH := 400, 225
	if cfg != nil && cfg.PreviewMaxW > 0 && cfg.PreviewMaxH > 0 {
		maxW, maxH = cfg.PreviewMaxW, cfg.PreviewMaxH
	}
	photo := NewPhoto(Data(placeholderPNG))
	well := Label(Image(photo), Borderwidth(1), Relief("sunken"), Anchor("center"))
	Grid(well, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(row), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	trigger := Button(Txt(triggerText), Command(onOpenMenu), Style(theme.StylePrimaryButton))
	Grid(trigger, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	return &pickerWell{imageLabel: well, prevPhoto: photo, maxW: maxW, maxH: maxH, placeholderPNG: placeholderPNG}
}

func (v *pickerWell) ShowImage(img image.Image) {
	if v == nil || v.imageLabel == nil {
		return
	}
	if img == nil {
		v.ShowPlaceholder()
		return
	}
	// Scale for display only; the bound value keeps its full resolution.
	scaled := images.ScaleToFit(img, v.maxW, v.maxH)
	pngBytes := images.EncodePNG(scaled)
	v.swapPhoto(pngBytes)
}

func (v *pickerWell) ShowPlaceholder() {
	if v == nil || v.imageLabel == nil {
		return
	}
	v.swapPhoto(v.placeholderPNG)
}

// swapPhoto replaces the displayed photo, deleting the previous one so Tk
// does not retain obsolete pixel buffers.
func (v *pickerWell) swapPhoto(pngBytes []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.imageLabel.Configure(Image(newPhoto))
}
