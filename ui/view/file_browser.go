package view

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"imagewell/config"
	"imagewell/domain/source"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FileBrowser navigates the filesystem and picks an image file. Directories
// open in place; picking or cancelling closes the window.
type FileBrowser interface {
	Open()
	Close()
}

type fileBrowser struct {
	logger    *slog.Logger
	startDir  string
	maxItems  int
	onPick    func(path string)
	onDismiss func()

	win        *ToplevelWidget
	pathText   *TextWidget
	listFrame  *FrameWidget
	itemBtns   []*ButtonWidget
	itemLabels []*LabelWidget
	dir        string
}

// NewFileBrowser creates the browser manager. startDir falls back to the
// user home directory.
func NewFileBrowser(startDir string, cfg *config.Config, logger *slog.Logger, onPick func(string), onDismiss func()) FileBrowser {
	if startDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			startDir = home
		} else {
			startDir = "."
		}
	}
	maxItems := 16
	if cfg != nil && cfg.BrowserMaxItems > 0 {
		maxItems = cfg.BrowserMaxItems
	}
	return &fileBrowser{logger: logger, startDir: startDir, maxItems: maxItems, onPick: onPick, onDismiss: onDismiss}
}

func (b *fileBrowser) Open() {
	if b == nil {
		return
	}
	if b.win != nil {
		WmGeometry(b.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Browse Files")
	b.win = win
	WmAttributes(win.Window, "-topmost", 1)
	GridColumnConfigure(win.Window, 1, Weight(1))

	lbl := win.Label(Txt("Folder:"), Anchor("w"))
	Grid(lbl, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	b.pathText = win.Text(Height(1), Width(40))
	Grid(b.pathText, Row(0), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	up := win.Button(Txt("Up"), Command(b.up))
	Grid(up, Row(0), Column(2), Sticky("e"), Padx("0.2m"), Pady("0.3m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(b.dismiss))
	Grid(cancel, Row(0), Column(3), Sticky("e"), Padx("0.2m"), Pady("0.3m"))

	b.listFrame = win.Frame()
	Grid(b.listFrame, Row(1), Column(0), Columnspan(4), Sticky("nsew"), Padx("0.4m"), Pady("0.3m"))

	Bind(b.pathText, "<Return>", Command(b.navigateToTyped))
	Bind(win, "<Escape>", Command(b.dismiss))
	b.populate(b.startDir)
}

func (b *fileBrowser) up() {
	if b == nil || b.dir == "" {
		return
	}
	b.populate(filepath.Dir(b.dir))
}

func (b *fileBrowser) navigateToTyped() {
	if b == nil || b.pathText == nil {
		return
	}
	typed := strings.TrimSpace(strings.Join(b.pathText.Get("1.0", END), ""))
	if typed == "" {
		return
	}
	b.populate(filepath.Clean(typed))
}

// populate rebuilds the listing for dir: directories first, then image
// files, both alphabetically, capped at maxItems rows.
func (b *fileBrowser) populate(dir string) {
	if b == nil || b.win == nil {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if b.logger != nil {
			b.logger.Warn("directory listing failed", "dir", dir, "error", err)
		}
		b.clearRows()
		msg := b.win.Label(Txt("Cannot open folder"), Anchor("w"))
		Grid(msg, In(b.listFrame), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
		b.itemLabels = append(b.itemLabels, msg)
		return
	}
	b.dir = dir
	b.setPathText(dir)

	var dirs, files []os.DirEntry
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, e)
		} else if source.IsImagePath(e.Name()) {
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })

	b.clearRows()
	row := 0
	for _, d := range dirs {
		if row >= b.maxItems {
			break
		}
		name := d.Name()
		target := filepath.Join(dir, name)
		btn := b.win.Button(Txt(name+"/"), Command(func() { b.populate(target) }))
		Grid(btn, In(b.listFrame), Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.1m"))
		b.itemBtns = append(b.itemBtns, btn)
		row++
	}
	for _, f := range files {
		if row >= b.maxItems {
			break
		}
		name := f.Name()
		target := filepath.Join(dir, name)
		label := name
		if info, err := f.Info(); err == nil {
			label = fmt.Sprintf("%s  (%s)", name, humanize.Bytes(uint64(info.Size())))
		}
		btn := b.win.Button(Txt(label), Command(func() { b.pick(target) }))
		Grid(btn, In(b.listFrame), Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.1m"))
		b.itemBtns = append(b.itemBtns, btn)
		row++
	}
	if row == 0 {
		empty := b.win.Label(Txt("No images here"), Anchor("w"))
		Grid(empty, In(b.listFrame), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
		b.itemLabels = append(b.itemLabels, empty)
	}
}

func (b *fileBrowser) setPathText(dir string) {
	if b.pathText == nil {
		return
	}
	b.pathText.Delete("1.0", END)
	b.pathText.Insert("1.0", dir)
}

func (b *fileBrowser) clearRows() {
	for _, w := range b.itemBtns {
		Destroy(w)
	}
	b.itemBtns = nil
	for _, w := range b.itemLabels {
		Destroy(w)
	}
	b.itemLabels = nil
}

func (b *fileBrowser) pick(path string) {
	b.Close()
	if b.onPick != nil {
		b.onPick(path)
	}
}

func (b *fileBrowser) dismiss() {
	b.Close()
	if b.onDismiss != nil {
		b.onDismiss()
	}
}

func (b *fileBrowser) Close() {
	if b == nil || b.win == nil {
		return
	}
	b.itemBtns = nil
	b.itemLabels = nil
	b.pathText = nil
	b.listFrame = nil
	Destroy(b.win)
	b.win = nil
}
