package selection

import (
	"image"

	"imagewell/domain/source"
)

// Action enumerates the acquisition commands a source menu can emit.
type Action int

const (
	ActionGallery Action = iota
	ActionCamera
	ActionFiles
	ActionClipboard
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionGallery:
		return "gallery"
	case ActionCamera:
		return "camera"
	case ActionFiles:
		return "files"
	case ActionClipboard:
		return "clipboard"
	case ActionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// State enumerates the finite flow states of the controller.
type State int

const (
	StateIdle State = iota
	StateGalleryBrowse
	StateGalleryLoad
	StateCameraCapture
	StateFileBrowse
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGalleryBrowse:
		return "gallery-browse"
	case StateGalleryLoad:
		return "gallery-load"
	case StateCameraCapture:
		return "camera-capture"
	case StateFileBrowse:
		return "file-browse"
	default:
		return "unknown"
	}
}

// Availability is a snapshot of which sources can currently serve. It is
// recomputed, never incrementally mutated.
type Availability struct {
	Camera    bool
	Clipboard bool
}

// MenuItem is one enabled entry of the source menu, in display order.
type MenuItem struct {
	Action Action
	Label  string
}

// Binding is the two-way handle to the host-owned optional image value.
// nil means empty. The controller assigns through it but never retains a
// private copy. Implementations must be safe for concurrent use: Set is
// called from the controller loop while the host reads from the UI thread.
type Binding interface {
	Get() image.Image
	Set(img image.Image)
}

// StateListener is called on each successful state transition.
type StateListener func(prev, next State)

// Sources aggregates the capability backends the controller drives.
// Individual entries may be nil; the matching flows then degrade to no-ops.
type Sources struct {
	Gallery   source.GalleryProvider
	Camera    source.CameraDevice
	Files     source.FileAccess
	Clipboard source.ClipboardDevice
}

// PresentKind names a modal surface the controller asks the UI to open.
type PresentKind int

const (
	PresentGallery PresentKind = iota
	PresentCamera
	PresentFiles
)

func (k PresentKind) String() string {
	switch k {
	case PresentGallery:
		return "gallery"
	case PresentCamera:
		return "camera"
	case PresentFiles:
		return "files"
	default:
		return "unknown"
	}
}

// Interface slices for consumers (presenters, views).
type StateSource interface{ Current() State }
type Dispatcher interface{ Dispatch(Action) }
type MenuSource interface{ MenuItems() []MenuItem }
type AvailabilitySource interface {
	Availability() Availability
	RefreshClipboard()
}
type ResultSink interface {
	EventGalleryPicked(ref string)
	EventCameraConfirmed(region image.Rectangle)
	EventFilePicked(path string)
	EventDismissed()
}
type Lifecycle interface {
	EventActivated()
	Close()
}

// ControllerContract aggregate for DI.
type ControllerContract interface {
	StateSource
	Dispatcher
	MenuSource
	AvailabilitySource
	ResultSink
	Lifecycle
	AddListener(StateListener)
	TakePresentation() (PresentKind, bool)
	Stats() Stats
}
