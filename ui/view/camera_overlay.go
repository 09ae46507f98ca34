package view

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"imagewell/domain/source"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CameraOverlay manages the transparent region window used to frame a
// screen capture. Confirm reports the framed region; the acquisition itself
// happens in the selection loop.
type CameraOverlay interface {
	Open()
	Close()
}

type cameraOverlay struct {
	logger    *slog.Logger
	device    source.CameraDevice
	onConfirm func(region image.Rectangle)
	onDismiss func()
	win       *ToplevelWidget
}

// NewCameraOverlay creates a new overlay manager over the camera device.
func NewCameraOverlay(device source.CameraDevice, logger *slog.Logger, onConfirm func(image.Rectangle), onDismiss func()) CameraOverlay {
	return &cameraOverlay{logger: logger, device: device, onConfirm: onConfirm, onDismiss: onDismiss}
}

func (v *cameraOverlay) Open() {
	if v == nil {
		return
	}
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background("#008080"))
	win.WmTitle("Frame Capture Region")
	v.win = win
	screenW, screenH := v.screenSize()
	initW, initH := screenW*2/3, screenH*5/9
	if initW < 1 {
		initW = 1
	}
	if initH < 1 {
		initH = 1
	}
	x, y := (screenW-initW)/2, (screenH-initH)/2
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", initW, initH, x, y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-transparentcolor", "#008080")
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background("#008080"))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Capture [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.cancel))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

// screenSize reads the device bounds for centering the initial frame.
func (v *cameraOverlay) screenSize() (int, int) {
	if v.device != nil {
		if b := v.device.Bounds(); b.Dx() > 0 && b.Dy() > 0 {
			return b.Dx(), b.Dy()
		}
	}
	return 1280, 720
}

func (v *cameraOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	rect, ok := parseGeometry(geom)
	v.destroy()
	if !ok {
		if v.logger != nil {
			v.logger.Warn("capture region geometry unreadable", "geometry", geom)
		}
		if v.onDismiss != nil {
			v.onDismiss()
		}
		return
	}
	if v.onConfirm != nil {
		v.onConfirm(rect)
	}
}

func (v *cameraOverlay) cancel() {
	v.destroy()
	if v.onDismiss != nil {
		v.onDismiss()
	}
}

func (v *cameraOverlay) Close() {
	if v == nil {
		return
	}
	v.destroy()
}

func (v *cameraOverlay) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometry parses a Tk geometry string and returns the corresponding
// rectangle.
func parseGeometry(g string) (image.Rectangle, bool) {
	g = strings.TrimSpace(g)
	m := geomRe.FindStringSubmatch(g)
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
