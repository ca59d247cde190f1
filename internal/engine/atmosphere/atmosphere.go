// Package atmosphere derives the frame-global sky, fog, clear color and
// primary light from the time of day, cloud layers and display options.
package atmosphere

import (
	gomath "math"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/scene"
)

var (
	// FLIRLight replaces the primary light color in FLIR mode.
	FLIRLight = scene.Color{R: 0, G: 1, B: 0}
	// FLIRSky replaces the sky, fog and clear colors in FLIR mode.
	FLIRSky = scene.Color{R: 0, G: 0.1, B: 0}
)

// aboveCloudsDarkening scales the nominal sky once the camera is above
// every cloud layer.
const aboveCloudsDarkening = 0.15

// Input collects what the model reads for one frame.
type Input struct {
	SkyNominal scene.Color
	LightColor scene.Color
	// Lightning is added to each light color component.
	Lightning float32

	// CameraAltitude is the camera Z in world space.
	CameraAltitude float32
	// CloudLayers are in ascending altitude order.
	CloudLayers []scene.CloudLayer

	// FarClip is the far clipping distance in meters.
	FarClip      float32
	DistCoeff    float32
	DensityCoeff float32

	FLIR           bool
	Atmosphere     bool
	TexturedClouds bool
}

// InputFromScene fills the scene derived fields of an Input.
func InputFromScene(s *scene.Scene, cameraAltitude, farClip float32) Input {
	return Input{
		SkyNominal:     s.SkyNominal,
		LightColor:     s.LightColor,
		Lightning:      s.Lightning,
		CameraAltitude: cameraAltitude,
		CloudLayers:    s.CloudLayers(),
		FarClip:        farClip,
		DistCoeff:      s.AtmosphereDistCoeff,
		DensityCoeff:   s.AtmosphereDensityCoeff,
	}
}

// Frame is the computed atmosphere for one frame.
type Frame struct {
	// Light is the primary light color after lightning and FLIR.
	Light scene.Color
	Sky   scene.Color
	// Atmosphere is the haze color, slightly brighter than the sky. Only
	// meaningful with the atmosphere enabled.
	Atmosphere scene.Color

	FogEnabled bool
	Fog        device.Fog

	ClearColor [4]float32
	// NeedClearColor is false when the background draws are known to
	// repaint every pixel, so the color clear can be skipped. Whenever it
	// is false the caller must draw the ground base, cloud layers and
	// horizon unconditionally.
	NeedClearColor bool

	// BelowCeiling is set when the camera is under the highest cloud
	// layer or there are no cloud layers.
	BelowCeiling bool
}

// Compute evaluates the atmosphere model.
func Compute(in Input) Frame {
	f := Frame{NeedClearColor: true}

	if in.FLIR {
		f.Light = FLIRLight
	} else {
		f.Light = scene.Color{
			R: min(in.LightColor.R+in.Lightning, 1),
			G: min(in.LightColor.G+in.Lightning, 1),
			B: min(in.LightColor.B+in.Lightning, 1),
		}
	}

	f.BelowCeiling = true
	if n := len(in.CloudLayers); n > 0 {
		f.BelowCeiling = in.CameraAltitude < in.CloudLayers[n-1].Altitude
		if f.BelowCeiling && in.TexturedClouds {
			f.NeedClearColor = false
		}
	}

	switch {
	case !f.BelowCeiling:
		f.Sky = scene.Color{
			R: in.SkyNominal.R * aboveCloudsDarkening * f.Light.R,
			G: in.SkyNominal.G * aboveCloudsDarkening * f.Light.G,
			B: in.SkyNominal.B * aboveCloudsDarkening * f.Light.B,
		}
	case in.Atmosphere:
		// Haze keeps the red channel up at dusk.
		f.Sky = scene.Color{
			R: in.SkyNominal.R * float32(gomath.Sqrt(float64(f.Light.R))),
			G: in.SkyNominal.G * f.Light.G,
			B: in.SkyNominal.B * f.Light.B,
		}
	default:
		f.Sky = scene.Color{
			R: in.SkyNominal.R * f.Light.R,
			G: in.SkyNominal.G * f.Light.G,
			B: in.SkyNominal.B * f.Light.B,
		}
	}

	if !in.Atmosphere {
		bg := f.Sky
		if in.FLIR {
			bg = FLIRSky
		}
		f.ClearColor = bg.RGBA(0)
		return f
	}

	f.Atmosphere = scene.Color{
		R: min(f.Sky.R*1.1, 1),
		G: min(f.Sky.G*1.1, 1),
		B: min(f.Sky.B*1.1, 1),
	}

	haze := f.Atmosphere
	if in.FLIR {
		haze = FLIRSky
	}

	f.FogEnabled = true
	f.Fog = device.Fog{
		Mode:    device.FogExp,
		Density: FogDensity(in.FarClip, in.DensityCoeff),
		Start:   in.FarClip * (1 - in.DistCoeff),
		End:     in.FarClip,
		Color:   haze.RGBA(1),
	}
	f.ClearColor = haze.RGBA(0)
	return f
}

// FogDensity returns the exponential fog density for a far clip distance.
func FogDensity(farClip, densityCoeff float32) float32 {
	if farClip <= 0 {
		return 0
	}
	return (1 / farClip) * (8 * densityCoeff)
}

// Layers picks the cloud layers drawn as tiled planes this frame: the
// first layer above the camera and the first below it, searching down
// from the top. A layer exactly at camera altitude is neither. Either
// result may be nil.
func Layers(layers []scene.CloudLayer, cameraAltitude float32) (above, below *scene.CloudLayer) {
	for i := range layers {
		if layers[i].Altitude > cameraAltitude {
			above = &layers[i]
			break
		}
	}
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i].Altitude < cameraAltitude {
			below = &layers[i]
			break
		}
	}
	return above, below
}
