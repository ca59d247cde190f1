package renderer

import "github.com/sar2/sar2/pkg/math"

// MaxVisibility is the highest VisibilityMax setting.
const MaxVisibility = 5

// minFarClip is the far clip used when the visibility setting would put
// it closer.
const minFarClip = 100

// Options are the per-frame display options.
type Options struct {
	// VisibilityMax in [0, MaxVisibility] sets the far clip distance.
	VisibilityMax int

	Atmosphere       bool
	TexturedClouds   bool
	TexturedObjects  bool
	CelestialObjects bool
	SmokeTrails      bool
	EventSounds      bool
	FLIR             bool

	// RuntimeDebug polls the device error flag once per frame.
	RuntimeDebug bool
	// GetCamDir recovers the camera direction from the modelview matrix
	// into the draw context.
	GetCamDir bool

	// PolygonOffsetFactor is applied to objects drawn with polygon
	// offset.
	PolygonOffsetFactor float32
	// AspectOffset corrects the view aspect for non square pixels.
	AspectOffset float32
}

// DefaultOptions returns the options of a fresh install.
func DefaultOptions() Options {
	return Options{
		VisibilityMax:       2,
		Atmosphere:          true,
		TexturedClouds:      true,
		TexturedObjects:     true,
		CelestialObjects:    true,
		SmokeTrails:         true,
		EventSounds:         true,
		PolygonOffsetFactor: -1,
	}
}

// FarClip returns the far clip distance in meters: three miles plus three
// per visibility step, never under 100 m.
func (o Options) FarClip() float32 {
	v := min(max(o.VisibilityMax, 0), MaxVisibility)
	return max(math.MilesToMeters(3+3*float32(v)), minFarClip)
}
