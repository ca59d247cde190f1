package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sar2/sar2/internal/engine/renderer"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.FOVDegrees != 40 {
		t.Errorf("expected fov 40, got %v", cfg.Graphics.FOVDegrees)
	}

	// Render defaults follow the renderer's
	if got, want := cfg.Render.Options(cfg.Graphics), renderer.DefaultOptions(); got != want {
		t.Errorf("expected render options %+v, got %+v", want, got)
	}

	// Test audio defaults
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.EngineVolume != 1 {
		t.Errorf("expected engine volume 1, got %f", cfg.Audio.EngineVolume)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.validate(); err != nil {
		t.Errorf("defaults rejected: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  aspect_offset: 0.05
  fov_degrees: 60

render:
  visibility_max: 4
  atmosphere: false
  textured_clouds: false
  flir: true
  runtime_debug: true
  polygon_offset_factor: -2

audio:
  master_volume: 0.5
  engine_volume: 0.6
  muted: true

logging:
  level: "debug"
  log_file: "sar2.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}

	opts := cfg.Render.Options(cfg.Graphics)
	if opts.VisibilityMax != 4 {
		t.Errorf("expected visibility 4, got %d", opts.VisibilityMax)
	}
	if opts.Atmosphere || opts.TexturedClouds {
		t.Error("expected atmosphere and textured clouds off")
	}
	if !opts.TexturedObjects {
		t.Error("expected textured objects to keep its default")
	}
	if !opts.FLIR || !opts.RuntimeDebug {
		t.Error("expected flir and runtime debug on")
	}
	if opts.PolygonOffsetFactor != -2 {
		t.Errorf("expected polygon offset factor -2, got %v", opts.PolygonOffsetFactor)
	}
	if opts.AspectOffset != 0.05 {
		t.Errorf("expected aspect offset 0.05, got %v", opts.AspectOffset)
	}

	if cfg.Audio.MasterVolume != 0.5 || cfg.Audio.EngineVolume != 0.6 {
		t.Errorf("expected volumes 0.5/0.6, got %v/%v", cfg.Audio.MasterVolume, cfg.Audio.EngineVolume)
	}
	if !cfg.Audio.Muted {
		t.Error("expected muted to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sar2.log" {
		t.Errorf("expected log file 'sar2.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestVisibilityClamped(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 0},
		{3, 3},
		{9, renderer.MaxVisibility},
	}
	for _, tt := range tests {
		r := RenderConfig{VisibilityMax: tt.in}
		if got := r.Options(GraphicsConfig{}).VisibilityMax; got != tt.want {
			t.Errorf("visibility %d: expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, false},
		{"zero fov", func(c *Config) { c.Graphics.FOVDegrees = 0 }, false},
		{"flat fov", func(c *Config) { c.Graphics.FOVDegrees = 180 }, false},
		{"negative volume", func(c *Config) { c.Audio.EngineVolume = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.validate(); (err == nil) != tt.valid {
				t.Errorf("validate() = %v, want valid %v", err, tt.valid)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Render.VisibilityMax = 5
	cfg.Render.FLIR = true
	cfg.Graphics.FOVDegrees = 55
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config %+v, want %+v", loaded, cfg)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Render.RuntimeDebug {
					t.Error("expected runtime debug with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "flir flag",
			setup: func() { *flagFLIR = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Render.FLIR {
					t.Error("expected flir with flir flag")
				}
			},
			teardown: func() { *flagFLIR = false },
		},
		{
			name:  "no atmosphere flag",
			setup: func() { *flagNoAtmosphere = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Atmosphere {
					t.Error("expected atmosphere off with no-atmosphere flag")
				}
			},
			teardown: func() { *flagNoAtmosphere = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  fov_degrees: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for zero field of view")
	}
}
