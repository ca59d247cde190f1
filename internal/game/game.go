// Package game runs the scene viewer: it builds the demo scene, animates
// it, maps key commands to camera and display changes and hands every
// frame to the renderer.
package game

import (
	"errors"
	"time"

	"github.com/gopxl/beep/v2"
	"go.uber.org/zap"

	"github.com/sar2/sar2/internal/clock"
	"github.com/sar2/sar2/internal/engine/audio"
	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/input"
	"github.com/sar2/sar2/internal/engine/renderer"
	"github.com/sar2/sar2/internal/logger"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// View limits.
const (
	minFOV       = 10
	maxFOV       = 90
	fovStep      = 5
	minMapHeight = 200
	maxMapHeight = 40000
	mapZoom      = 1.25
)

// Engine loop tones.
const (
	insideEngineHz   = 70
	outsideEngineHz  = 110
	stallBeepHz      = 880
	stallBeepPeriod  = 0.4
	overspeedBeepHz  = 1400
	overspeedPeriod  = 0.15
	engineRateLimit  = 1.6
	engineAudibleRad = 3000
)

// Config holds the viewer collaborators.
type Config struct {
	Device   device.Device
	Renderer *renderer.Renderer
	// Mixer is optional; without it the renderer's audio updates are
	// dropped.
	Mixer *audio.Mixer
	// SampleRate of the mixer output.
	SampleRate beep.SampleRate

	Options renderer.Options
	// FOV is the initial vertical field of view in radians.
	FOV      float32
	Bindings input.Bindings

	// Display sizes screenshots; without it screenshots are disabled.
	Display       renderer.Display
	ScreenshotDir string
}

// Game is the viewer instance.
type Game struct {
	log *zap.Logger

	dev      device.Device
	display  renderer.Display
	renderer *renderer.Renderer
	mixer    *audio.Mixer
	input    *input.Input

	shotDir     string
	shotPending bool

	demo  *Demo
	opts  renderer.Options
	clock clock.Clock

	// lastRef is the camera restored when leaving the map.
	lastRef scene.CameraRef
	frames  int
}

// New creates the viewer and its demo scene. The renderer must be created
// with the same device.
func New(cfg Config) (*Game, error) {
	if cfg.Device == nil || cfg.Renderer == nil {
		return nil, errors.New("game: device and renderer are required")
	}

	g := &Game{
		log:      logger.Named("game"),
		dev:      cfg.Device,
		display:  cfg.Display,
		renderer: cfg.Renderer,
		mixer:    cfg.Mixer,
		input:    input.New(cfg.Bindings),
		demo:     NewDemo(cfg.Device),
		opts:     cfg.Options,
		clock:    clock.New(),
		shotDir:  cfg.ScreenshotDir,
	}
	if g.shotDir == "" {
		g.shotDir = "."
	}
	if cfg.FOV > 0 {
		g.demo.Scene.Camera.FOV = cfg.FOV
	}
	g.lastRef = g.demo.Scene.Camera.Ref

	if g.mixer != nil {
		g.registerSounds(cfg.SampleRate)
	}

	g.log.Info("viewer initialized",
		zap.Int("objects", len(g.demo.Scene.Objects)),
		zap.Stringer("camera", g.demo.Scene.Camera.Ref),
	)
	return g, nil
}

func (g *Game) registerSounds(sr beep.SampleRate) {
	if sr <= 0 {
		sr = audio.DefaultSampleRate
	}
	src := &audio.EngineSource{RateLimit: engineRateLimit, Range: engineAudibleRad}
	for _, obj := range g.demo.Scene.Objects {
		if obj == nil || obj.Aircraft == nil {
			continue
		}
		g.mixer.RegisterEngine(obj,
			audio.EngineDrone(sr, insideEngineHz),
			audio.EngineDrone(sr, outsideEngineHz),
			src, src,
		)
	}
	g.mixer.SetWarningSounds(
		audio.Beeper(sr, stallBeepHz, stallBeepPeriod),
		audio.Beeper(sr, overspeedBeepHz, overspeedPeriod),
	)
}

// Scene returns the viewed scene.
func (g *Game) Scene() *scene.Scene {
	return g.demo.Scene
}

// Options returns the current display options.
func (g *Game) Options() renderer.Options {
	return g.opts
}

// Frame runs one viewer frame: input, animation and drawing. It returns
// true when the viewer should quit.
func (g *Game) Frame(events []input.Event, elapsed time.Duration) bool {
	if g.input.Update(events) {
		return true
	}
	for _, cmd := range g.input.Commands() {
		g.apply(cmd)
	}

	g.clock = g.clock.Advance(elapsed)
	g.update()

	g.renderer.DrawScene(g.demo.Scene, g.opts, g.clock)
	if g.shotPending {
		g.shotPending = false
		g.screenshot()
	}

	g.frames++
	return false
}

// Run calls Frame until it asks to quit, feeding it events from poll.
func (g *Game) Run(poll func([]input.Event) []input.Event) {
	var events []input.Event
	last := time.Now()
	fpsTimer := last
	fpsFrames := g.frames

	g.log.Info("starting viewer loop")
	for {
		events = poll(events)
		now := time.Now()
		if g.Frame(events, now.Sub(last)) {
			break
		}
		last = now

		if now.Sub(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", g.frames-fpsFrames))
			fpsFrames = g.frames
			fpsTimer = now
		}
	}
	g.log.Info("viewer loop stopped", zap.Int("frames", g.frames))
}

// update animates the demo at the current simulation time.
func (g *Game) update() {
	t := g.clock.Now().Seconds()
	g.demo.UpdatePatrol(t)
	g.demo.UpdateSmoke(t)
}

func (g *Game) apply(cmd input.Command) {
	s := g.demo.Scene
	switch cmd {
	case input.CommandCockpit:
		g.setCamera(scene.CameraCockpit)
	case input.CommandSpot:
		g.setCamera(scene.CameraSpot)
	case input.CommandTower:
		g.setCamera(scene.CameraTower)
	case input.CommandHoist:
		g.setCamera(scene.CameraHoist)
	case input.CommandMap:
		if s.Camera.Ref == scene.CameraMap {
			g.setCamera(g.lastRef)
		} else {
			g.setCamera(scene.CameraMap)
		}

	case input.CommandToggleFLIR:
		g.opts.FLIR = !g.opts.FLIR
	case input.CommandToggleAtmosphere:
		g.opts.Atmosphere = !g.opts.Atmosphere
	case input.CommandToggleSmoke:
		g.opts.SmokeTrails = !g.opts.SmokeTrails
	case input.CommandVisibilityUp:
		g.opts.VisibilityMax = min(g.opts.VisibilityMax+1, renderer.MaxVisibility)
	case input.CommandVisibilityDown:
		g.opts.VisibilityMax = max(g.opts.VisibilityMax-1, 0)

	case input.CommandZoomIn:
		g.zoom(true)
	case input.CommandZoomOut:
		g.zoom(false)

	case input.CommandGroundProbe:
		g.probeGround()
	case input.CommandScreenshot:
		g.shotPending = g.display != nil
	}
	g.log.Debug("command", zap.Stringer("command", cmd))
}

// setCamera switches the camera reference. Entering the map centers it
// on the player.
func (g *Game) setCamera(ref scene.CameraRef) {
	c := &g.demo.Scene.Camera
	if ref == scene.CameraMap && c.Ref != scene.CameraMap {
		g.lastRef = c.Ref
		if p := g.demo.Scene.Player(); p != nil {
			c.MapPos.X, c.MapPos.Y = p.Pos.X, p.Pos.Y
		}
	}
	c.Ref = ref
}

// zoom narrows or widens the field of view, or moves the map camera.
func (g *Game) zoom(in bool) {
	c := &g.demo.Scene.Camera
	if c.Ref == scene.CameraMap {
		if in {
			c.MapPos.Z = max(c.MapPos.Z/mapZoom, minMapHeight)
		} else {
			c.MapPos.Z = min(c.MapPos.Z*mapZoom, maxMapHeight)
		}
		return
	}
	step := math.DegToRad(fovStep)
	if in {
		c.FOV = max(c.FOV-step, math.DegToRad(minFOV))
	} else {
		c.FOV = min(c.FOV+step, math.DegToRad(maxFOV))
	}
}

// probeGround runs both ground probes under the player and logs what it
// found.
func (g *Game) probeGround() {
	s := g.demo.Scene
	hits := g.renderer.GroundContactCheck(s, g.opts, g.clock, s.PlayerIndex)
	names := make([]string, 0, len(hits))
	for _, i := range hits {
		names = append(names, s.Object(i).Name)
	}
	gotHit, overWater := g.renderer.GroundHitCheck(s, g.opts, g.clock, s.PlayerIndex)
	g.log.Info("ground probe",
		zap.Strings("contacts", names),
		zap.Bool("ground", gotHit),
		zap.Bool("water", overWater),
	)
}

// screenshot saves the frame just presented.
func (g *Game) screenshot() {
	w, h := g.display.Size()
	img, err := Capture(g.dev, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := SaveScreenshot(g.shotDir, img, time.Now())
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}
