package selection

import (
	"errors"
	"image"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"imagewell/domain/source"
)

// Controller owns the write path of the bound image value. It runs a single
// event-loop goroutine: every user action, modal result and availability
// refresh is serialized through the loop, so at most one writer ever touches
// the binding and flow ordering equals event order.
//
// Supersession: each dispatch mints a new generation. The gallery flow is
// the only one that suspends (its decode runs off-loop); the worker carries
// the generation it started under and its result is discarded unless that
// generation is still current on arrival. The remaining flows resolve inside
// the loop, so queue order alone makes the last action win.
type Controller struct {
	binding Binding
	sources Sources
	logger  *slog.Logger

	events chan interface{}
	closed atomic.Bool

	// Loop-owned; entered only from the loop goroutine.
	generation uint64
	flowID     string
	listeners  []StateListener

	state   atomic.Int64
	avail   atomic.Pointer[Availability]
	present atomic.Pointer[presentRequest]
	ct      counters
}

type presentRequest struct{ kind PresentKind }

// events
type (
	evtDispatch      struct{ action Action }
	evtGalleryPicked struct{ ref string }
	evtLoaded        struct {
		gen     uint64
		img     image.Image
		err     error
		elapsed time.Duration
	}
	evtCameraConfirmed struct{ region image.Rectangle }
	evtFilePicked      struct{ path string }
	evtDismissed       struct{}
	evtRefreshAvail    struct{}
	evtAddListener     struct{ l StateListener }
)

// NewController constructs the controller and starts its event loop. The
// camera flag is probed once here; the clipboard flag is computed for the
// initial mount and thereafter only on refresh events.
func NewController(binding Binding, sources Sources, logger *slog.Logger) *Controller {
	c := &Controller{
		binding: binding,
		sources: sources,
		logger:  logger,
		events:  make(chan interface{}, 64),
	}
	avail := Availability{}
	if sources.Camera != nil {
		avail.Camera = sources.Camera.Available()
	}
	if sources.Clipboard != nil && sources.Clipboard.Available() {
		avail.Clipboard = sources.Clipboard.HasImage()
	}
	c.avail.Store(&avail)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("selection loop panic", "error", r, "stack", stack)
				}
			}
		}()
		c.loop()
	}()
	return c
}

func (c *Controller) loop() {
	for ev := range c.events {
		switch e := ev.(type) {
		case evtAddListener:
			c.listeners = append(c.listeners, e.l)
		case evtDispatch:
			c.handleDispatch(e.action)
		case evtGalleryPicked:
			c.handleGalleryPicked(e.ref)
		case evtLoaded:
			c.handleLoaded(e)
		case evtCameraConfirmed:
			c.handleCameraConfirmed(e.region)
		case evtFilePicked:
			c.handleFilePicked(e.path)
		case evtDismissed:
			c.handleDismissed()
		case evtRefreshAvail:
			c.refreshAvailability()
		}
	}
}

// handleDispatch begins the flow for action. Any dispatch supersedes an
// outstanding gallery load by advancing the generation.
func (c *Controller) handleDispatch(action Action) {
	if action == ActionCamera && !c.Availability().Camera {
		if c.logger != nil {
			c.logger.Debug("camera dispatch ignored, device unavailable")
		}
		return
	}
	c.ct.dispatched.Add(1)
	c.generation++
	c.flowID = uuid.NewString()
	if c.logger != nil {
		c.logger.Debug("flow dispatched", "action", action.String(), "flow", c.flowID)
	}
	switch action {
	case ActionClear:
		c.transition(StateIdle)
		if c.binding != nil {
			c.binding.Set(nil)
		}
		c.ct.cleared.Add(1)
		if c.logger != nil {
			c.logger.Info("value cleared", "flow", c.flowID)
		}
	case ActionClipboard:
		c.transition(StateIdle)
		if c.sources.Clipboard == nil {
			c.fail("clipboard", source.ErrNoImage)
			return
		}
		img, err := c.sources.Clipboard.ReadImage()
		if err != nil {
			c.fail("clipboard", err)
			c.refreshAvailability()
			return
		}
		c.apply(img, "clipboard")
	case ActionGallery:
		c.transition(StateGalleryBrowse)
		c.requestPresent(PresentGallery)
	case ActionCamera:
		c.transition(StateCameraCapture)
		c.requestPresent(PresentCamera)
	case ActionFiles:
		c.transition(StateFileBrowse)
		c.requestPresent(PresentFiles)
	}
}

func (c *Controller) handleGalleryPicked(ref string) {
	if c.Current() != StateGalleryBrowse {
		c.discardStale("gallery pick")
		return
	}
	if c.sources.Gallery == nil {
		c.fail("gallery", errors.New("no gallery provider"))
		c.transition(StateIdle)
		return
	}
	gen := c.generation
	c.transition(StateGalleryLoad)
	go c.loadGallery(gen, ref)
}

// loadGallery runs off-loop; it is the only suspending acquisition.
func (c *Controller) loadGallery(gen uint64, ref string) {
	defer recoverLog(c.logger, "gallery load panic")
	start := time.Now()
	img, err := c.sources.Gallery.Load(ref)
	c.send(evtLoaded{gen: gen, img: img, err: err, elapsed: time.Since(start)})
}

func (c *Controller) handleLoaded(e evtLoaded) {
	c.ct.recordLoad(e.elapsed)
	if e.gen != c.generation {
		c.ct.superseded.Add(1)
		if c.logger != nil {
			c.logger.Debug("stale gallery result discarded", "have", c.generation, "got", e.gen)
		}
		return
	}
	if e.err != nil {
		c.fail("gallery", e.err)
		c.transition(StateIdle)
		return
	}
	c.apply(e.img, "gallery")
}

// handleCameraConfirmed acquires from the camera device inside the loop, so
// confirm-and-assign is atomic with respect to other flows.
func (c *Controller) handleCameraConfirmed(region image.Rectangle) {
	if c.Current() != StateCameraCapture {
		c.discardStale("camera result")
		return
	}
	if c.sources.Camera == nil {
		c.fail("camera", errors.New("no camera device"))
		c.transition(StateIdle)
		return
	}
	img, err := c.sources.Camera.Capture(region)
	if err != nil {
		c.fail("camera", err)
		c.transition(StateIdle)
		return
	}
	c.apply(img, "camera")
}

// handleFilePicked runs the whole scoped acquisition inline: acquire, decode,
// assign, release. Release is deferred so every exit path pairs with the
// acquire, including decode failure.
func (c *Controller) handleFilePicked(path string) {
	if c.Current() != StateFileBrowse {
		c.discardStale("file pick")
		return
	}
	if c.sources.Files == nil {
		c.fail("files", errors.New("no file access"))
		c.transition(StateIdle)
		return
	}
	scoped, err := c.sources.Files.Acquire(path)
	if err != nil {
		c.fail("files", err)
		c.transition(StateIdle)
		return
	}
	defer scoped.Release()
	img, err := scoped.Decode()
	if err != nil {
		c.fail("files", err)
		c.transition(StateIdle)
		return
	}
	c.apply(img, "files")
}

func (c *Controller) handleDismissed() {
	st := c.Current()
	switch st {
	case StateGalleryBrowse, StateCameraCapture, StateFileBrowse:
		c.ct.cancelled.Add(1)
		if c.logger != nil {
			c.logger.Debug("selection cancelled", "state", st.String(), "flow", c.flowID)
		}
		c.transition(StateIdle)
	default:
		if c.logger != nil {
			c.logger.Debug("dismiss ignored", "state", st.String())
		}
	}
}

// apply assigns the acquired image through the binding and returns to idle.
func (c *Controller) apply(img image.Image, src string) {
	if c.binding != nil {
		c.binding.Set(img)
	}
	c.ct.recordApply(time.Now())
	if c.logger != nil {
		c.logger.Info("image applied", "source", src, "flow", c.flowID)
	}
	c.transition(StateIdle)
}

// fail records a local failure; the bound value stays untouched.
func (c *Controller) fail(src string, err error) {
	c.ct.failed.Add(1)
	if c.logger != nil {
		c.logger.Error("acquisition failed",
			"source", src,
			"outcome", outcomeFor(err),
			"error", err,
			"flow", c.flowID,
		)
	}
}

func (c *Controller) discardStale(what string) {
	c.ct.superseded.Add(1)
	if c.logger != nil {
		c.logger.Debug("stale event discarded", "event", what, "state", c.Current().String())
	}
}

func (c *Controller) transition(next State) {
	prev := State(c.state.Load())
	if prev == next {
		return
	}
	c.state.Store(int64(next))
	if c.logger != nil {
		c.logger.Debug("selection state transition", "from", prev.String(), "to", next.String(), "flow", c.flowID)
	}
	for _, l := range c.listeners {
		l(prev, next)
	}
}

func (c *Controller) requestPresent(kind PresentKind) {
	c.present.Store(&presentRequest{kind: kind})
	if c.logger != nil {
		c.logger.Debug("presentation requested", "kind", kind.String(), "flow", c.flowID)
	}
}

func (c *Controller) refreshAvailability() {
	cur := c.Availability()
	next := Availability{Camera: cur.Camera}
	if c.sources.Clipboard != nil && c.sources.Clipboard.Available() {
		next.Clipboard = c.sources.Clipboard.HasImage()
	}
	if next != cur && c.logger != nil {
		c.logger.Debug("availability changed", "camera", next.Camera, "clipboard", next.Clipboard)
	}
	c.avail.Store(&next)
}

// outcomeFor maps an error to its taxonomy bucket for log fields.
func outcomeFor(err error) string {
	switch {
	case errors.Is(err, source.ErrAccessDenied):
		return "access-denied"
	case errors.Is(err, source.ErrNoImage):
		return "no-image"
	default:
		return "decode-failed"
	}
}

// Dispatch signals that the user chose an action from the menu.
func (c *Controller) Dispatch(a Action) { c.send(evtDispatch{action: a}) }

// EventGalleryPicked reports the reference chosen in the gallery browser.
func (c *Controller) EventGalleryPicked(ref string) { c.send(evtGalleryPicked{ref: ref}) }

// EventCameraConfirmed reports the region framed in the capture overlay.
// The device acquisition happens in the loop.
func (c *Controller) EventCameraConfirmed(region image.Rectangle) {
	c.send(evtCameraConfirmed{region: region})
}

// EventFilePicked reports the path chosen in the file browser.
func (c *Controller) EventFilePicked(path string) { c.send(evtFilePicked{path: path}) }

// EventDismissed reports that the open surface was closed without a choice.
func (c *Controller) EventDismissed() { c.send(evtDismissed{}) }

// EventActivated tells the controller the widget became active again.
func (c *Controller) EventActivated() { c.send(evtRefreshAvail{}) }

// RefreshClipboard recomputes the clipboard availability flag.
func (c *Controller) RefreshClipboard() { c.send(evtRefreshAvail{}) }

// AddListener registers a transition listener. Listeners run on the loop
// goroutine and must not block.
func (c *Controller) AddListener(l StateListener) { c.send(evtAddListener{l: l}) }

// Current returns the flow state.
func (c *Controller) Current() State { return State(c.state.Load()) }

// Availability returns the latest availability snapshot.
func (c *Controller) Availability() Availability { return *c.avail.Load() }

// MenuItems builds the menu from the freshest snapshot; availability and
// value presence are read at build time.
func (c *Controller) MenuItems() []MenuItem {
	hasValue := c.binding != nil && c.binding.Get() != nil
	return BuildMenu(c.Availability(), hasValue)
}

// TakePresentation hands out and clears the pending modal request. The UI
// loop polls this on the Tk thread.
func (c *Controller) TakePresentation() (PresentKind, bool) {
	p := c.present.Swap(nil)
	if p == nil {
		return 0, false
	}
	return p.kind, true
}

func (c *Controller) Stats() Stats { return c.ct.snapshot() }

func (c *Controller) Close() {
	if c.closed.Swap(true) {
		return
	}
	close(c.events)
}

// send delivers an event unless the controller is closed. A send racing
// Close is swallowed by the recover.
func (c *Controller) send(ev interface{}) {
	if c.closed.Load() {
		return
	}
	defer func() { _ = recover() }()
	c.events <- ev
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r)
		}
	}
}

// Ensure contract satisfaction.
var _ ControllerContract = (*Controller)(nil)
