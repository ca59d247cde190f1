package atmosphere

import (
	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// PrimaryLightDistance is how far from the camera the primary light is
// placed along the scene light vector.
const PrimaryLightDistance = 100000

// PrimaryLight returns the directional light 0 for the frame. The light is
// positioned relative to the camera so it always reads as infinitely far.
func PrimaryLight(f Frame, cameraPos, lightDir math.Vec3) device.Light {
	p := math.ToRender(cameraPos.Add(lightDir.Scale(PrimaryLightDistance)))
	return device.Light{
		Position: [4]float32{p.X(), p.Y(), p.Z(), 0},
		Ambient:  f.Light.Scale(0.5).RGBA(1),
		Diffuse:  f.Light.Scale(1.1).Clamp().RGBA(1),
		Specular: [4]float32{1, 1, 1, 1},

		ConstantAttenuation: 1,
	}
}

// ModelAmbient returns the global ambient term.
func ModelAmbient(flir bool) [4]float32 {
	if flir {
		return [4]float32{0, 0.1, 0, 1}
	}
	return [4]float32{0.1, 0.1, 0.1, 1}
}

// DefaultMaterial is the material in effect before any object overrides it.
func DefaultMaterial() device.Material {
	return device.Material{
		Ambient:  scene.Color{R: 0.2, G: 0.2, B: 0.2}.RGBA(1),
		Diffuse:  scene.Color{R: 0.8, G: 0.8, B: 0.8}.RGBA(1),
		Specular: [4]float32{0, 0, 0, 1},
		Emission: [4]float32{0, 0, 0, 1},
	}
}
