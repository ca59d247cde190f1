package renderer

import (
	"github.com/sar2/sar2/internal/engine/audio"
	"github.com/sar2/sar2/internal/scene"
)

// Display is the window the frame is presented on.
type Display interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	SwapBuffers()
}

// AudioSink receives the engine and warning updates of the aircraft walk.
// *audio.Mixer implements it.
type AudioSink interface {
	AdvanceEngine(obj *scene.Object, u audio.EngineUpdate)
	MuteEngine(obj *scene.Object)
	UpdateStall(obj *scene.Object, in audio.StallInput) bool
	UpdateOverspeed(obj *scene.Object, overspeed bool)
}

// Diagnostics receives device error codes when runtime debugging is on.
type Diagnostics func(code uint32)

// Drawers draws the content that is not part of the render core: terrain,
// sky, clouds, type specific geometry and 2-D overlays. Every call runs
// with the transform and state prepared by the pipeline. Drawers must
// leave the matrix stack balanced.
//
// Embed NopDrawers to implement only some of them.
type Drawers interface {
	// Background.
	Foundations(dc *DrawContext)
	Horizon(dc *DrawContext)
	CloudLayer(dc *DrawContext, layer *scene.CloudLayer, above bool)
	Celestial(dc *DrawContext)
	CloudBillboards(dc *DrawContext)

	// Object parts, called in object space.
	Shadow(dc *DrawContext, obj *scene.Object)
	HoistDeployment(dc *DrawContext, obj *scene.Object)
	Parts(dc *DrawContext, obj *scene.Object)
	FuelTanks(dc *DrawContext, obj *scene.Object)
	Rotors(dc *DrawContext, obj *scene.Object)
	SpotLight(dc *DrawContext, obj *scene.Object)
	SpotLightCast(dc *DrawContext, obj *scene.Object)
	Cockpit(dc *DrawContext, obj *scene.Object)

	// Type specific objects.
	Runway(dc *DrawContext, obj *scene.Object, distance3D float32)
	Helipad(dc *DrawContext, obj *scene.Object, distance3D float32)
	Human(dc *DrawContext, obj *scene.Object)
	Smoke(dc *DrawContext, obj *scene.Object)
	Fire(dc *DrawContext, obj *scene.Object)
	Explosion(dc *DrawContext, obj *scene.Object)
	Premodeled(dc *DrawContext, obj *scene.Object, distance3D float32, probe bool)

	// Map view.
	RunwayMap(dc *DrawContext, obj *scene.Object, iconLen float32)
	HelipadMap(dc *DrawContext, obj *scene.Object, iconLen float32)
	MapGrids(dc *DrawContext)
	MapCrossHairs(dc *DrawContext)

	// Overlays, drawn in a width by height orthographic projection.
	HUD(dc *DrawContext, player *scene.Object)
	OutsideAttitude(dc *DrawContext, player *scene.Object)
	Overlay(dc *DrawContext)
}

// NopDrawers draws nothing.
type NopDrawers struct{}

var _ Drawers = NopDrawers{}

func (NopDrawers) Foundations(*DrawContext)                              {}
func (NopDrawers) Horizon(*DrawContext)                                  {}
func (NopDrawers) CloudLayer(*DrawContext, *scene.CloudLayer, bool)      {}
func (NopDrawers) Celestial(*DrawContext)                                {}
func (NopDrawers) CloudBillboards(*DrawContext)                          {}
func (NopDrawers) Shadow(*DrawContext, *scene.Object)                    {}
func (NopDrawers) HoistDeployment(*DrawContext, *scene.Object)           {}
func (NopDrawers) Parts(*DrawContext, *scene.Object)                     {}
func (NopDrawers) FuelTanks(*DrawContext, *scene.Object)                 {}
func (NopDrawers) Rotors(*DrawContext, *scene.Object)                    {}
func (NopDrawers) SpotLight(*DrawContext, *scene.Object)                 {}
func (NopDrawers) SpotLightCast(*DrawContext, *scene.Object)             {}
func (NopDrawers) Cockpit(*DrawContext, *scene.Object)                   {}
func (NopDrawers) Runway(*DrawContext, *scene.Object, float32)           {}
func (NopDrawers) Helipad(*DrawContext, *scene.Object, float32)          {}
func (NopDrawers) Human(*DrawContext, *scene.Object)                     {}
func (NopDrawers) Smoke(*DrawContext, *scene.Object)                     {}
func (NopDrawers) Fire(*DrawContext, *scene.Object)                      {}
func (NopDrawers) Explosion(*DrawContext, *scene.Object)                 {}
func (NopDrawers) Premodeled(*DrawContext, *scene.Object, float32, bool) {}
func (NopDrawers) RunwayMap(*DrawContext, *scene.Object, float32)        {}
func (NopDrawers) HelipadMap(*DrawContext, *scene.Object, float32)       {}
func (NopDrawers) MapGrids(*DrawContext)                                 {}
func (NopDrawers) MapCrossHairs(*DrawContext)                            {}
func (NopDrawers) HUD(*DrawContext, *scene.Object)                       {}
func (NopDrawers) OutsideAttitude(*DrawContext, *scene.Object)           {}
func (NopDrawers) Overlay(*DrawContext)                                  {}

// nopAudio discards audio updates.
type nopAudio struct{}

func (nopAudio) AdvanceEngine(*scene.Object, audio.EngineUpdate)       {}
func (nopAudio) MuteEngine(*scene.Object)                              {}
func (nopAudio) UpdateStall(_ *scene.Object, in audio.StallInput) bool { return audio.Stalling(in) }
func (nopAudio) UpdateOverspeed(*scene.Object, bool)                   {}
