package lighting

import (
	gomath "math"
	"testing"

	"github.com/sar2/sar2/internal/clock"
	"github.com/sar2/sar2/internal/engine/device/devicetest"
	"github.com/sar2/sar2/internal/engine/stategl"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

func approxEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestIntensity(t *testing.T) {
	strobe := scene.LightOn | scene.LightStrobe

	tests := []struct {
		name  string
		light scene.Light
		now   int64
		want  float32
	}{
		{"steady", scene.Light{Flags: scene.LightOn}, 500, 1},
		{"off, just turned off", scene.Light{Flags: strobe, NextOn: 1000, IntervalOff: 1000}, 0, 0.5},
		{"off, at low point", scene.Light{Flags: strobe, NextOn: 1000, IntervalOff: 1000}, 700, 0},
		{"off, about to turn on", scene.Light{Flags: strobe, NextOn: 1000, IntervalOff: 1000}, 1000, 0.5},
		{"off, no interval", scene.Light{Flags: strobe, NextOn: 1000}, 0, 0.5},
		{"on, just turned on", scene.Light{Flags: strobe, NextOff: 200, IntervalOn: 200}, 0, 0.5},
		{"on, midway", scene.Light{Flags: strobe, NextOff: 200, IntervalOn: 200}, 100, 1},
		{"on, no interval", scene.Light{Flags: strobe}, 0, 0.5},
		{"on, overdue", scene.Light{Flags: strobe, NextOff: 100, IntervalOn: 200}, 500, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intensity(&tt.light, tt.now); !approxEqual(got, tt.want) {
				t.Errorf("Intensity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntensityRange(t *testing.T) {
	l := scene.Light{Flags: scene.LightOn | scene.LightStrobe, NextOn: 1000, IntervalOff: 1000}
	for now := int64(-500); now <= 1500; now += 50 {
		if c := Intensity(&l, now); c < 0 || c > 0.5+1e-6 {
			t.Fatalf("off strobe intensity at %d = %v, want within [0, 0.5]", now, c)
		}
	}

	l = scene.Light{Flags: scene.LightOn | scene.LightStrobe, NextOff: 1000, IntervalOn: 1000}
	for now := int64(-500); now <= 1500; now += 50 {
		if c := Intensity(&l, now); c < 0.5 || c > 1 {
			t.Fatalf("on strobe intensity at %d = %v, want within [0.5, 1]", now, c)
		}
	}
}

func TestAddLightsSkipsHidden(t *testing.T) {
	lights := []scene.Light{
		{Flags: 0, Radius: 2},
		{Flags: scene.LightOn | scene.LightAttenuate, Radius: 2},
		{Flags: scene.LightOn | scene.LightSpot, Radius: 2},
	}

	b := NewPointBuffer()
	b.AddLights(lights, clock.New(), false)
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if b.Points[0].Size != 4 {
		t.Errorf("Size = %v, want 4", b.Points[0].Size)
	}
}

func TestAddLightsStrobeCore(t *testing.T) {
	c := clock.New()
	c.Millitime = 100
	lights := []scene.Light{{
		Pos:        math.Vec3{X: 1, Y: 2, Z: 3},
		Color:      scene.Color{R: 1, G: 0, B: 0},
		Alpha:      1,
		Radius:     3,
		Flags:      scene.LightOn | scene.LightStrobe,
		NextOff:    200,
		IntervalOn: 200,
	}}

	b := NewPointBuffer()
	b.AddLights(lights, c, false)
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want core and halo", b.Len())
	}

	core, halo := b.Points[0], b.Points[1]
	if core.Size != 3 || core.Color[3] != 1 {
		t.Errorf("core = %+v, want size 3 alpha 1", core)
	}
	if halo.Size != 6 {
		t.Errorf("halo size = %v, want 6", halo.Size)
	}
	if want := math.ToRender(lights[0].Pos); core.Position != want {
		t.Errorf("Position = %v, want %v", core.Position, want)
	}
}

func TestAddLightsFLIR(t *testing.T) {
	lights := []scene.Light{{
		Color:  scene.Color{R: 0.2, G: 0.7, B: 0.4},
		Alpha:  0.5,
		Radius: 0.1,
		Flags:  scene.LightOn,
	}}

	b := NewPointBuffer()
	b.AddLights(lights, clock.New(), true)

	p := b.Points[0]
	if p.Color != [4]float32{0.7, 0.7, 0.7, 0.5} {
		t.Errorf("Color = %v, want grey 0.7", p.Color)
	}
	if p.Size != 1 {
		t.Errorf("Size = %v, want floor of 1", p.Size)
	}

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len after Clear = %d", b.Len())
	}
}

func TestDrawRestoresState(t *testing.T) {
	rec := devicetest.New()
	st := stategl.New(rec, nil)
	st.Enable(stategl.Lighting)
	st.Enable(stategl.AlphaTest)

	b := NewPointBuffer()
	b.AddLights([]scene.Light{{Flags: scene.LightOn, Radius: 1, Alpha: 1}}, clock.New(), false)

	rec.Reset()
	Draw(rec, st, b)

	if rec.Count("DrawPoints") != 1 {
		t.Errorf("DrawPoints calls = %d, want 1", rec.Count("DrawPoints"))
	}
	if !st.Enabled(stategl.Lighting) || !st.Enabled(stategl.AlphaTest) {
		t.Error("lighting or alpha test not restored")
	}
	if st.Enabled(stategl.Blend) || st.Enabled(stategl.PointSmooth) {
		t.Error("blend or point smooth left on")
	}
	if got := st.Param(stategl.ParamPointSize)[0]; got != 1 {
		t.Errorf("point size = %v, want 1", got)
	}
}

func TestDrawEmpty(t *testing.T) {
	rec := devicetest.New()
	st := stategl.New(rec, nil)
	Draw(rec, st, NewPointBuffer())
	if len(rec.Calls) != 0 {
		t.Errorf("calls = %v, want none", rec.Calls)
	}
}
