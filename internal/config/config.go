// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/sar2/sar2/internal/engine/renderer"
	"github.com/sar2/sar2/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	// AspectOffset corrects the view aspect for non square pixels.
	AspectOffset float32 `yaml:"aspect_offset"`
	FOVDegrees   float32 `yaml:"fov_degrees"`

	// ScreenshotDir receives screenshots; empty means the working
	// directory.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// FOV returns the vertical field of view in radians.
func (g GraphicsConfig) FOV() float32 {
	return math.DegToRad(g.FOVDegrees)
}

// RenderConfig holds the display options applied every frame.
type RenderConfig struct {
	VisibilityMax       int     `yaml:"visibility_max"` // 0..5, sets the far clip
	Atmosphere          bool    `yaml:"atmosphere"`
	TexturedClouds      bool    `yaml:"textured_clouds"`
	TexturedObjects     bool    `yaml:"textured_objects"`
	CelestialObjects    bool    `yaml:"celestial_objects"`
	SmokeTrails         bool    `yaml:"smoke_trails"`
	EventSounds         bool    `yaml:"event_sounds"`
	FLIR                bool    `yaml:"flir"`
	RuntimeDebug        bool    `yaml:"runtime_debug"`
	GetCamDir           bool    `yaml:"get_cam_dir"`
	PolygonOffsetFactor float32 `yaml:"polygon_offset_factor"`
}

// Options converts the settings to per-frame renderer options.
func (r RenderConfig) Options(g GraphicsConfig) renderer.Options {
	return renderer.Options{
		VisibilityMax:       min(max(r.VisibilityMax, 0), renderer.MaxVisibility),
		Atmosphere:          r.Atmosphere,
		TexturedClouds:      r.TexturedClouds,
		TexturedObjects:     r.TexturedObjects,
		CelestialObjects:    r.CelestialObjects,
		SmokeTrails:         r.SmokeTrails,
		EventSounds:         r.EventSounds,
		FLIR:                r.FLIR,
		RuntimeDebug:        r.RuntimeDebug,
		GetCamDir:           r.GetCamDir,
		PolygonOffsetFactor: r.PolygonOffsetFactor,
		AspectOffset:        g.AspectOffset,
	}
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	EngineVolume float32 `yaml:"engine_volume"`
	Muted        bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := renderer.DefaultOptions()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 40,
		},
		Render: RenderConfig{
			VisibilityMax:       opts.VisibilityMax,
			Atmosphere:          opts.Atmosphere,
			TexturedClouds:      opts.TexturedClouds,
			TexturedObjects:     opts.TexturedObjects,
			CelestialObjects:    opts.CelestialObjects,
			SmokeTrails:         opts.SmokeTrails,
			EventSounds:         opts.EventSounds,
			PolygonOffsetFactor: opts.PolygonOffsetFactor,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			EngineVolume: 1,
			Muted:        false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
