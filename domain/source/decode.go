package source

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	// Register the stdlib decoders plus the extended formats so a single
	// sniffing image.Decode covers every accepted picker type.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageExts is the fixed accept list for file pickers, lower-case with dot.
var ImageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// IsImagePath reports whether path carries one of the accepted extensions.
func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExts {
		if ext == e {
			return true
		}
	}
	return false
}

// DecodeImage decodes image data from r using format sniffing.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// DecodeImageBytes decodes an in-memory encoded image.
func DecodeImageBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode image: empty data")
	}
	return DecodeImage(bytes.NewReader(data))
}
