package main

import (
	"flag"
	"log/slog"

	"github.com/adrg/xdg"

	"imagewell/app"
	"imagewell/config"
)

func main() {
	configFlag := flag.String("config", "", "path to config file (default: XDG config dir)")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Resolve the config path inside the user config dir; fall back to a
	// local file when the dir cannot be created.
	cfgPath := *configFlag
	if cfgPath == "" {
		var err error
		cfgPath, err = xdg.ConfigFile("imagewell/config.json")
		if err != nil {
			cfgPath = "config.json"
		}
	}

	cfg, cfgErr := config.Load(cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", cfgErr)
	}

	application := app.NewApp("Image Well", 560, 520, cfg, logger, cfgPath)
	application.Start()
}
