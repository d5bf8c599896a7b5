// Package main runs the synthwave scene fullscreen without any UI,
// for unattended displays.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/demo"
	"github.com/franky-adl/synthwave-scene/internal/engine/audio"
	"github.com/franky-adl/synthwave-scene/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Synthwave Scene (kiosk) ===")

	d, err := demo.New(cfg)
	if err != nil {
		logger.Error("failed to create demo", zap.Error(err))
		os.Exit(1)
	}
	defer d.Close()

	if cfg.Audio.Enabled && cfg.Audio.TrackPath != "" {
		player := audio.New(float64(cfg.Audio.Volume))
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else if err := player.Play(cfg.Audio.TrackPath); err != nil {
			logger.Warn("could not play track", zap.Error(err))
		}
		defer player.Close()
	}

	if err := d.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
