package model

import (
	"image"
	"sync"

	"imagewell/domain/selection"
)

// ImageModel holds the optional image value the well is bound to. nil means
// empty. Concurrency-safe via mutex because the selection loop assigns while
// UI ticks read.
type ImageModel struct {
	mu      sync.Mutex
	img     image.Image
	version uint64
}

// NewImageModel returns a pointer to a ready-to-use ImageModel.
func NewImageModel() *ImageModel { return &ImageModel{} }

// Get returns the current value, nil when empty.
func (m *ImageModel) Get() image.Image {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.img
}

// Set assigns the value and bumps the version. Every assignment counts,
// including clears and re-assignments of the same image.
func (m *ImageModel) Set(img image.Image) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.img = img
	m.version++
}

// Version increments on every assignment. UI ticks compare it against the
// last rendered version to skip redundant redraws.
func (m *ImageModel) Version() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Snapshot returns value and version from the same critical section so a
// render decision never mixes two assignments.
func (m *ImageModel) Snapshot() (image.Image, uint64) {
	if m == nil {
		return nil, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.img, m.version
}

var _ selection.Binding = (*ImageModel)(nil)
