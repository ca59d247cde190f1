// Package main is the entry point for the SAR2 scene viewer.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/sar2/sar2/internal/config"
	"github.com/sar2/sar2/internal/engine/audio"
	"github.com/sar2/sar2/internal/engine/device/gl21"
	"github.com/sar2/sar2/internal/engine/renderer"
	"github.com/sar2/sar2/internal/engine/stategl"
	"github.com/sar2/sar2/internal/engine/window"
	"github.com/sar2/sar2/internal/game"
	"github.com/sar2/sar2/internal/logger"
)

const windowTitle = "Search and Rescue II"

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== SAR2 Scene Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	// Create window (this also creates the OpenGL context)
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	dev, err := gl21.New()
	if err != nil {
		return fmt.Errorf("creating GL device: %w", err)
	}
	st := stategl.New(dev, logger.Named("stategl"))
	w, h := win.Size()
	st.SetWindowSize(int32(w), int32(h))
	st.ResetAll()

	mixer := audio.New()
	mixer.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	mixer.SetEngineVolume(float64(cfg.Audio.EngineVolume))
	mixer.SetMuted(cfg.Audio.Muted)

	sr := audio.DefaultSampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		// The viewer runs silent without an audio device.
		logger.Warn("audio unavailable", zap.Error(err))
	} else {
		speaker.Play(mixer)
		defer speaker.Close()
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	r, err := renderer.New(renderer.Config{
		Device:  dev,
		Display: win,
		State:   st,
		Drawers: game.NewDrawers(dev),
		Audio:   mixer,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	g, err := game.New(game.Config{
		Device:        dev,
		Renderer:      r,
		Mixer:         mixer,
		SampleRate:    sr,
		Options:       cfg.Render.Options(cfg.Graphics),
		FOV:           cfg.Graphics.FOV(),
		Display:       win,
		ScreenshotDir: cfg.Graphics.ScreenshotDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}

	g.Run(win.PollEvents)
	return nil
}
