package source

import "image"

// ClampRegion intersects a requested capture rectangle with the available
// bounds. The boolean is false when nothing of the request lies within
// bounds; otherwise the returned rectangle is non-empty and fully contained.
func ClampRegion(r, bounds image.Rectangle) (image.Rectangle, bool) {
	if bounds.Empty() {
		return image.Rectangle{}, false
	}
	out := r.Intersect(bounds)
	if out.Empty() {
		return image.Rectangle{}, false
	}
	return out, true
}
