package selection

// Menu labels are fixed; the host controls the trigger rendering, not the
// entry texts.
const (
	labelGallery   = "Photo Library"
	labelCamera    = "Screen Capture"
	labelFiles     = "Browse Files"
	labelClipboard = "Paste Image"
	labelClear     = "Clear Image"
)

// BuildMenu produces the ordered list of enabled actions for the given
// availability snapshot and current value presence. Gallery and Files are
// always offered; Camera and Clipboard depend on their flags; Clear is only
// offered while a value is present.
func BuildMenu(avail Availability, hasValue bool) []MenuItem {
	items := make([]MenuItem, 0, 5)
	items = append(items, MenuItem{Action: ActionGallery, Label: labelGallery})
	if avail.Camera {
		items = append(items, MenuItem{Action: ActionCamera, Label: labelCamera})
	}
	items = append(items, MenuItem{Action: ActionFiles, Label: labelFiles})
	if avail.Clipboard {
		items = append(items, MenuItem{Action: ActionClipboard, Label: labelClipboard})
	}
	if hasValue {
		items = append(items, MenuItem{Action: ActionClear, Label: labelClear})
	}
	return items
}
