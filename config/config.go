package config

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for the image well and its source
// surfaces. Fields may be loaded from a JSON file and overridden by
// command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Gallery parameters
	GalleryDir            string `json:"gallery_dir"`
	ThumbnailLongEdge     int    `json:"thumbnail_long_edge"`
	ThumbnailCacheEntries int    `json:"thumbnail_cache_entries"`

	// Display parameters
	PreviewMaxW     int `json:"preview_max_w"`
	PreviewMaxH     int `json:"preview_max_h"`
	BrowserMaxItems int `json:"browser_max_items"`
}

// DefaultConfig returns a Config populated with standard defaults. The
// gallery directory defaults to the user pictures folder.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		GalleryDir:            xdg.UserDirs.Pictures,
		ThumbnailLongEdge:     96,
		ThumbnailCacheEntries: 128,
		PreviewMaxW:           400,
		PreviewMaxH:           225,
		BrowserMaxItems:       16,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.GalleryDir == "" {
		c.GalleryDir = xdg.UserDirs.Pictures
	}
	if c.ThumbnailLongEdge < 16 {
		c.ThumbnailLongEdge = 16
	}
	if c.ThumbnailLongEdge > 512 {
		c.ThumbnailLongEdge = 512
	}
	if c.ThumbnailCacheEntries < 8 {
		c.ThumbnailCacheEntries = 8
	}
	if c.PreviewMaxW < 50 {
		c.PreviewMaxW = 50
	}
	if c.PreviewMaxH < 50 {
		c.PreviewMaxH = 50
	}
	if c.BrowserMaxItems < 4 {
		c.BrowserMaxItems = 4
	}
	if c.BrowserMaxItems > 64 {
		c.BrowserMaxItems = 64
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
