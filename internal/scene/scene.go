// Package scene defines the world state read by the renderer: objects,
// cloud layers, lighting environment and the persistent camera state.
//
// Scene management code outside the renderer creates and mutates these
// values; the render pipeline only reads them, apart from CameraState and
// the audio side effects of aircraft.
package scene

import (
	"sort"

	"github.com/sar2/sar2/pkg/math"
)

// TimeOfDay is the coarse time of day code used to pick model variants.
type TimeOfDay int

const (
	TODUndefined TimeOfDay = iota
	TODDay
	TODDawn
	TODDusk
	TODNight
)

func (t TimeOfDay) String() string {
	switch t {
	case TODDay:
		return "day"
	case TODDawn:
		return "dawn"
	case TODDusk:
		return "dusk"
	case TODNight:
		return "night"
	default:
		return "undefined"
	}
}

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// RGBA returns the color as a four component array.
func (c Color) RGBA(a float32) [4]float32 {
	return [4]float32{c.R, c.G, c.B, a}
}

// Scale returns the color multiplied by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Clamp returns the color with every component limited to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Gray returns the brightest component, used for greyscale FLIR output.
func (c Color) Gray() float32 {
	return max(c.R, c.G, c.B)
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// CloudLayer is a horizontal tiled cloud plane.
type CloudLayer struct {
	Altitude float32
	// Data is owned by the cloud layer drawer.
	Data any
}

// Scene is the world snapshot the renderer draws.
type Scene struct {
	Objects []*Object

	// PlayerIndex is the index of the locally piloted object, -1 if none.
	PlayerIndex int

	Camera CameraState

	TimeOfDay TimeOfDay

	// cloudLayers is kept in ascending altitude order.
	cloudLayers []CloudLayer

	// SkyNominal is the sky color at full daylight.
	SkyNominal Color
	// LightColor is the primary light (sun or moon) color.
	LightColor Color
	// LightPos is the unit vector from the camera toward the primary light.
	LightPos math.Vec3
	// Lightning is the transient lightning flash intensity added to the
	// light color.
	Lightning float32

	// AtmosphereDistCoeff sets where fog begins as a fraction of the far
	// clip, AtmosphereDensityCoeff scales fog density.
	AtmosphereDistCoeff    float32
	AtmosphereDensityCoeff float32

	// BaseColor is the ground or sea color seen from the map view.
	BaseColor Color
	BaseWater bool
}

// New returns an empty scene with no player.
func New() *Scene {
	return &Scene{
		PlayerIndex: -1,
		Camera:      DefaultCameraState(),
	}
}

// Object returns the object at index i, or nil if i does not name an
// allocated object.
func (s *Scene) Object(i int) *Object {
	if i < 0 || i >= len(s.Objects) {
		return nil
	}
	return s.Objects[i]
}

// Player returns the locally piloted object, or nil.
func (s *Scene) Player() *Object {
	return s.Object(s.PlayerIndex)
}

// AddObject appends an object and returns its index.
func (s *Scene) AddObject(o *Object) int {
	s.Objects = append(s.Objects, o)
	return len(s.Objects) - 1
}

// SetCloudLayers replaces the cloud layers, sorting them by altitude.
func (s *Scene) SetCloudLayers(layers []CloudLayer) {
	s.cloudLayers = append([]CloudLayer(nil), layers...)
	sort.SliceStable(s.cloudLayers, func(i, j int) bool {
		return s.cloudLayers[i].Altitude < s.cloudLayers[j].Altitude
	})
}

// CloudLayers returns the cloud layers, lowest first.
func (s *Scene) CloudLayers() []CloudLayer {
	return s.cloudLayers
}

// LowestCloudLayer returns the lowest cloud layer or nil.
func (s *Scene) LowestCloudLayer() *CloudLayer {
	if len(s.cloudLayers) == 0 {
		return nil
	}
	return &s.cloudLayers[0]
}

// HighestCloudLayer returns the highest cloud layer or nil.
func (s *Scene) HighestCloudLayer() *CloudLayer {
	if len(s.cloudLayers) == 0 {
		return nil
	}
	return &s.cloudLayers[len(s.cloudLayers)-1]
}
