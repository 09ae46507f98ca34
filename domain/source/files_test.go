package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskAccess_AcquireDecodeRelease(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	writePNG(t, path, 6, 3)

	d := NewDiskAccess(discardLogger)
	scoped, err := d.Acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if scoped.Name() != "pic.png" {
		t.Fatalf("unexpected name %q", scoped.Name())
	}
	img, err := scoped.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 6 {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}
	scoped.Release()
}

func TestDiskAccess_AcquireMissing(t *testing.T) {
	d := NewDiskAccess(discardLogger)
	_, err := d.Acquire(filepath.Join(t.TempDir(), "absent.png"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if errors.Is(err, ErrAccessDenied) {
		t.Fatalf("missing file should not classify as access denied")
	}
}

func TestDiskAccess_DecodeFailureStillReleases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.png")
	if err := os.WriteFile(path, []byte("garbage bytes"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d := NewDiskAccess(discardLogger)
	scoped, err := d.Acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if _, err := scoped.Decode(); err == nil {
		t.Fatalf("expected decode error")
	}
	scoped.Release()
}

func TestScopedFile_ReleaseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	writePNG(t, path, 2, 2)

	d := NewDiskAccess(discardLogger)
	scoped, err := d.Acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	scoped.Release()
	// Second release must not panic or close another descriptor.
	scoped.Release()
	if _, err := scoped.Decode(); err == nil {
		t.Fatalf("expected decode to fail after release")
	}
}
