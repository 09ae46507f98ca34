package source

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DirGallery serves a picture library backed by a single directory.
// The listing is cached and invalidated by a filesystem watcher, so the
// browser reflects externally added or removed pictures without restart.
// Thumbnails are decoded lazily and kept in an LRU keyed by path+mtime.
type DirGallery struct {
	dir       string
	thumbEdge int
	logger    *slog.Logger

	mu      sync.Mutex
	items   []Item // nil when the listing is dirty
	thumbs  *lru.Cache[string, image.Image]
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewDirGallery constructs a gallery over dir. Construction never fails;
// listing errors surface from Items. The watcher is best-effort: when it
// cannot be created the gallery still works without auto-invalidation.
func NewDirGallery(dir string, thumbEdge, cacheEntries int, logger *slog.Logger) *DirGallery {
	if thumbEdge < 16 {
		thumbEdge = 16
	}
	if cacheEntries < 8 {
		cacheEntries = 8
	}
	g := &DirGallery{dir: dir, thumbEdge: thumbEdge, logger: logger, done: make(chan struct{})}
	if cache, err := lru.New[string, image.Image](cacheEntries); err == nil {
		g.thumbs = cache
	}
	if w, err := fsnotify.NewWatcher(); err != nil {
		if logger != nil {
			logger.Warn("gallery watcher unavailable", "error", err)
		}
	} else if err := w.Add(dir); err != nil {
		_ = w.Close()
		if logger != nil {
			logger.Warn("gallery watch failed", "dir", dir, "error", err)
		}
	} else {
		g.watcher = w
		go g.watch()
	}
	return g
}

func (g *DirGallery) watch() {
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			g.invalidate()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			if g.logger != nil {
				g.logger.Warn("gallery watcher error", "error", err)
			}
		case <-g.done:
			return
		}
	}
}

func (g *DirGallery) invalidate() {
	g.mu.Lock()
	g.items = nil
	g.mu.Unlock()
	if g.thumbs != nil {
		g.thumbs.Purge()
	}
	if g.logger != nil {
		g.logger.Debug("gallery listing invalidated", "dir", g.dir)
	}
}

// Items returns the image entries of the gallery directory, newest first.
func (g *DirGallery) Items() ([]Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.items != nil {
		out := make([]Item, len(g.items))
		copy(out, g.items)
		return out, nil
	}
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return nil, fmt.Errorf("read gallery dir %s: %w", g.dir, err)
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImagePath(e.Name()) {
			continue
		}
		info, ierr := e.Info()
		if ierr != nil {
			continue
		}
		items = append(items, Item{
			Ref:       filepath.Join(g.dir, e.Name()),
			Name:      e.Name(),
			SizeLabel: humanize.Bytes(uint64(info.Size())),
			ModTime:   info.ModTime(),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ModTime.After(items[j].ModTime) })
	g.items = items
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

// Filter ranks the listing against query using normalized fuzzy matching.
// An empty query returns the full listing.
func (g *DirGallery) Filter(query string) []Item {
	items, err := g.Items()
	if err != nil {
		return nil
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)
	out := make([]Item, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, items[r.OriginalIndex])
	}
	return out
}

// Thumb returns a square thumbnail for ref, or nil when it cannot be built.
func (g *DirGallery) Thumb(ref string) image.Image {
	info, err := os.Stat(ref)
	if err != nil {
		return nil
	}
	key := ref + "|" + info.ModTime().UTC().String()
	if g.thumbs != nil {
		if img, ok := g.thumbs.Get(key); ok {
			return img
		}
	}
	img, err := g.Load(ref)
	if err != nil {
		if g.logger != nil {
			g.logger.Debug("thumbnail decode failed", "ref", ref, "error", err)
		}
		return nil
	}
	thumb := imaging.Thumbnail(img, g.thumbEdge, g.thumbEdge, imaging.Lanczos)
	if g.thumbs != nil {
		g.thumbs.Add(key, thumb)
	}
	return thumb
}

// Load opens and decodes the image behind ref.
func (g *DirGallery) Load(ref string) (image.Image, error) {
	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", ref, err)
	}
	defer f.Close()
	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ref, err)
	}
	return img, nil
}

// Close stops the directory watcher.
func (g *DirGallery) Close() {
	close(g.done)
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

var _ GalleryProvider = (*DirGallery)(nil)
