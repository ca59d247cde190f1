package atmosphere

import (
	gomath "math"
	"testing"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < epsilon
}

func colorEqual(a, b scene.Color) bool {
	return approxEqual(a.R, b.R) && approxEqual(a.G, b.G) && approxEqual(a.B, b.B)
}

func baseInput() Input {
	return Input{
		SkyNominal:     scene.Color{R: 0.5, G: 0.6, B: 0.9},
		LightColor:     scene.Color{R: 0.64, G: 0.5, B: 0.5},
		CameraAltitude: 1000,
		FarClip:        10000,
		DistCoeff:      0.25,
		DensityCoeff:   0.5,
		Atmosphere:     true,
	}
}

func layers(alts ...float32) []scene.CloudLayer {
	out := make([]scene.CloudLayer, len(alts))
	for i, a := range alts {
		out[i].Altitude = a
	}
	return out
}

func TestNeedClearColor(t *testing.T) {
	tests := []struct {
		name     string
		layers   []scene.CloudLayer
		alt      float32
		atmos    bool
		textured bool
		want     bool
	}{
		{"below all layers", layers(3000, 5000), 1000, true, true, false},
		{"between layers", layers(500, 2000), 1000, true, true, false},
		{"above highest", layers(500, 2000), 2500, true, true, true},
		{"untextured clouds", layers(3000), 1000, true, false, true},
		{"no layers", nil, 1000, true, true, true},
		{"atmosphere off", layers(3000), 1000, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.CloudLayers = tt.layers
			in.CameraAltitude = tt.alt
			in.Atmosphere = tt.atmos
			in.TexturedClouds = tt.textured

			f := Compute(in)
			if f.NeedClearColor != tt.want {
				t.Errorf("NeedClearColor = %v, want %v", f.NeedClearColor, tt.want)
			}
		})
	}
}

func TestSkyColor(t *testing.T) {
	in := baseInput()
	f := Compute(in)

	want := scene.Color{R: 0.5 * 0.8, G: 0.6 * 0.5, B: 0.9 * 0.5}
	if !colorEqual(f.Sky, want) {
		t.Errorf("Sky = %+v, want %+v", f.Sky, want)
	}
	wantAtmos := scene.Color{R: 0.44, G: 0.33, B: 0.495}
	if !colorEqual(f.Atmosphere, wantAtmos) {
		t.Errorf("Atmosphere = %+v, want %+v", f.Atmosphere, wantAtmos)
	}
	if f.ClearColor != f.Atmosphere.RGBA(0) {
		t.Errorf("ClearColor = %v, want atmosphere color", f.ClearColor)
	}
}

func TestSkyColorAtmosphereOff(t *testing.T) {
	in := baseInput()
	in.Atmosphere = false
	f := Compute(in)

	want := scene.Color{R: 0.5 * 0.64, G: 0.6 * 0.5, B: 0.9 * 0.5}
	if !colorEqual(f.Sky, want) {
		t.Errorf("Sky = %+v, want %+v", f.Sky, want)
	}
	if f.FogEnabled {
		t.Error("fog enabled with atmosphere off")
	}
	if f.ClearColor != f.Sky.RGBA(0) {
		t.Errorf("ClearColor = %v, want sky %v", f.ClearColor, f.Sky.RGBA(0))
	}
}

func TestSkyDarkensAboveClouds(t *testing.T) {
	in := baseInput()
	in.CloudLayers = layers(500, 2000)
	in.CameraAltitude = 2500

	f := Compute(in)
	if f.BelowCeiling {
		t.Fatal("BelowCeiling = true above the highest layer")
	}
	want := scene.Color{R: 0.5 * 0.15 * 0.64, G: 0.6 * 0.15 * 0.5, B: 0.9 * 0.15 * 0.5}
	if !colorEqual(f.Sky, want) {
		t.Errorf("Sky = %+v, want %+v", f.Sky, want)
	}
}

func TestLightningClamps(t *testing.T) {
	in := baseInput()
	in.Lightning = 0.8
	f := Compute(in)

	want := scene.Color{R: 1, G: 1, B: 1}
	if !colorEqual(f.Light, want) {
		t.Errorf("Light = %+v, want %+v", f.Light, want)
	}
}

func TestFog(t *testing.T) {
	f := Compute(baseInput())
	if !f.FogEnabled {
		t.Fatal("fog disabled with atmosphere on")
	}
	if f.Fog.Mode != device.FogExp {
		t.Errorf("Mode = %v, want FogExp", f.Fog.Mode)
	}
	if !approxEqual(f.Fog.Density, 8*0.5/10000) {
		t.Errorf("Density = %v", f.Fog.Density)
	}
	if !approxEqual(f.Fog.Start, 7500) || !approxEqual(f.Fog.End, 10000) {
		t.Errorf("Start, End = %v, %v, want 7500, 10000", f.Fog.Start, f.Fog.End)
	}
	if f.Fog.Color[3] != 1 {
		t.Errorf("fog alpha = %v, want 1", f.Fog.Color[3])
	}
}

func TestFogDensityZeroFar(t *testing.T) {
	if d := FogDensity(0, 1); d != 0 {
		t.Errorf("FogDensity(0, 1) = %v, want 0", d)
	}
}

func TestFLIRPalette(t *testing.T) {
	in := baseInput()
	in.FLIR = true
	in.Lightning = 1
	f := Compute(in)

	if f.Light != FLIRLight {
		t.Errorf("Light = %+v, want FLIR light", f.Light)
	}
	if f.Fog.Color != FLIRSky.RGBA(1) {
		t.Errorf("fog color = %v, want FLIR sky", f.Fog.Color)
	}
	if f.ClearColor != FLIRSky.RGBA(0) {
		t.Errorf("ClearColor = %v, want FLIR sky", f.ClearColor)
	}

	in.Atmosphere = false
	if f := Compute(in); f.ClearColor != FLIRSky.RGBA(0) {
		t.Errorf("ClearColor without atmosphere = %v, want FLIR sky", f.ClearColor)
	}
}

func TestLayers(t *testing.T) {
	ls := layers(500, 2000, 4000)

	tests := []struct {
		alt          float32
		above, below float32
	}{
		{100, 500, -1},
		{1000, 2000, 500},
		{3000, 4000, 2000},
		{5000, -1, 4000},
		{2000, 4000, 500},
	}

	for _, tt := range tests {
		above, below := Layers(ls, tt.alt)
		gotAbove, gotBelow := float32(-1), float32(-1)
		if above != nil {
			gotAbove = above.Altitude
		}
		if below != nil {
			gotBelow = below.Altitude
		}
		if gotAbove != tt.above || gotBelow != tt.below {
			t.Errorf("Layers(%v) = %v, %v, want %v, %v", tt.alt, gotAbove, gotBelow, tt.above, tt.below)
		}
	}
}

func TestPrimaryLight(t *testing.T) {
	f := Frame{Light: scene.Color{R: 1, G: 0.5, B: 0.2}}
	l := PrimaryLight(f, math.Vec3{X: 10, Y: 20, Z: 30}, math.Vec3{X: 0, Y: 0, Z: 1})

	want := [4]float32{10, 30 + PrimaryLightDistance, -20, 0}
	if l.Position != want {
		t.Errorf("Position = %v, want %v", l.Position, want)
	}
	if l.Ambient != [4]float32{0.5, 0.25, 0.1, 1} {
		t.Errorf("Ambient = %v", l.Ambient)
	}
	if !approxEqual(l.Diffuse[0], 1) || !approxEqual(l.Diffuse[1], 0.55) {
		t.Errorf("Diffuse = %v", l.Diffuse)
	}
	if l.ConstantAttenuation != 1 {
		t.Errorf("ConstantAttenuation = %v, want 1", l.ConstantAttenuation)
	}
}
