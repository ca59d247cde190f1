// Package renderer draws the main 3-D view and the map view of a scene
// through a fixed-function device.
//
// A Renderer owns no scene data. Each call assembles a DrawContext, places
// the camera, computes the atmosphere and walks the objects, dispatching
// on object type. Geometry outside the render core is drawn by Drawers.
package renderer

import (
	"errors"

	"go.uber.org/zap"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/lighting"
	"github.com/sar2/sar2/internal/engine/stategl"
	"github.com/sar2/sar2/internal/engine/visibility"
	"github.com/sar2/sar2/internal/logger"
)

// Config holds renderer collaborators. Device and Display are required.
type Config struct {
	Device  device.Device
	Display Display

	// State is the state cache installed on Device. When nil the renderer
	// creates one and resets it.
	State *stategl.State

	Drawers     Drawers
	Audio       AudioSink
	Diagnostics Diagnostics
}

// Renderer draws frames.
type Renderer struct {
	dev     device.Device
	st      *stategl.State
	display Display
	drawers Drawers
	audio   AudioSink
	diag    Diagnostics
	log     *zap.Logger

	lights   *lighting.PointBuffer
	variants []visibility.Selection
}

// New creates a renderer. Config.Device must be ready to take calls: when
// Config.State is nil, New resets the device state through a new cache.
func New(cfg Config) (*Renderer, error) {
	if cfg.Device == nil {
		return nil, errors.New("renderer: no device")
	}
	if cfg.Display == nil {
		return nil, errors.New("renderer: no display")
	}

	r := &Renderer{
		dev:     cfg.Device,
		st:      cfg.State,
		display: cfg.Display,
		drawers: cfg.Drawers,
		audio:   cfg.Audio,
		diag:    cfg.Diagnostics,
		log:     logger.Named("render"),
		lights:  lighting.NewPointBuffer(),
	}
	if r.st == nil {
		r.st = stategl.New(r.dev, nil)
		w, h := r.display.Size()
		r.st.SetWindowSize(int32(w), int32(h))
		r.st.ResetAll()
	}
	if r.drawers == nil {
		r.drawers = NopDrawers{}
	}
	if r.audio == nil {
		r.audio = nopAudio{}
	}
	if r.diag == nil {
		r.diag = func(code uint32) {
			r.log.Warn("device error", zap.Uint32("code", code))
		}
	}

	logger.Debug("renderer created")
	return r, nil
}

// State returns the state cache the renderer issues state changes through.
func (r *Renderer) State() *stategl.State {
	return r.st
}

// pollErrors reports pending device errors. Only the first error flag is
// read each frame.
func (r *Renderer) pollErrors(opts Options) {
	if !opts.RuntimeDebug {
		return
	}
	if code := r.dev.Error(); code != 0 {
		r.diag(code)
	}
}
