package visibility

import (
	"testing"

	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

type model string

func (model) Draw() {}

func objectAt(x, y, z, rng float32) *scene.Object {
	return &scene.Object{Pos: math.Vec3{X: x, Y: y, Z: z}, Range: rng}
}

func TestInRange(t *testing.T) {
	camera := math.Vec3{}
	for _, rng := range []float32{0, 1, 10, 999.5, 5000} {
		if rng > 0 {
			if _, ok := InRange(objectAt(rng-0.01, 0, 0, rng), camera); !ok {
				t.Errorf("range %v: rejected at range minus epsilon", rng)
			}
		}
		if _, ok := InRange(objectAt(rng+0.5, 0, 0, rng), camera); ok {
			t.Errorf("range %v: accepted beyond range", rng)
		}
	}
}

func TestInRangeIgnoresAltitude(t *testing.T) {
	obj := objectAt(30, 40, 10000, 50)
	d, ok := InRange(obj, math.Vec3{Z: -500})
	if !ok || d != 50 {
		t.Errorf("InRange = %v, %v, want 50, true", d, ok)
	}
}

func TestInRangeExtended(t *testing.T) {
	obj := objectAt(150, 0, 0, 100)
	if _, ok := InRangeExtended(obj, math.Vec3{}, 40); ok {
		t.Error("accepted at 150 with range 100 + 40")
	}
	if _, ok := InRangeExtended(obj, math.Vec3{}, 60); !ok {
		t.Error("rejected at 150 with range 100 + 60")
	}
}

func TestCloudDeckScenario(t *testing.T) {
	s := scene.New()
	s.SetCloudLayers([]scene.CloudLayer{{Altitude: 2000}, {Altitude: 500}})
	lowest := s.LowestCloudLayer()
	const cameraZ = 1000

	if !OccludedByCloudDeck(lowest, cameraZ, 100) {
		t.Error("object at 100 not occluded")
	}
	if OccludedByCloudDeck(lowest, cameraZ, 600) {
		t.Error("object at 600 occluded")
	}
}

func TestOccludedByCloudDeck(t *testing.T) {
	deck := &scene.CloudLayer{Altitude: 500}

	tests := []struct {
		name    string
		lowest  *scene.CloudLayer
		camera  float32
		object  float32
		occlude bool
	}{
		{"no layers", nil, 1000, 0, false},
		{"camera below deck", deck, 400, 0, false},
		{"camera on deck", deck, 500, 0, false},
		{"object on deck", deck, 1000, 500, false},
		{"camera above object below", deck, 1000, 499, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OccludedByCloudDeck(tt.lowest, tt.camera, tt.object); got != tt.occlude {
				t.Errorf("OccludedByCloudDeck = %v, want %v", got, tt.occlude)
			}
		})
	}
}

func TestFarModelSwitch(t *testing.T) {
	obj := objectAt(0, 0, 0, 5000)
	obj.RangeFar = 1000
	obj.Models.Far = model("far")

	tests := []struct {
		distance float32
		want     Decision
	}{
		{999, DrawDetailed},
		{1000, DrawDetailed},
		{1001, DrawFar},
		{5000, DrawFar},
		{5001, Skip},
	}

	for _, tt := range tests {
		obj.Pos.X = tt.distance
		if got := Assess(obj, math.Vec3{}, nil).Decision; got != tt.want {
			t.Errorf("distance %v: decision %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestFarRangeWithoutFarModel(t *testing.T) {
	obj := objectAt(0, 0, 0, 800)
	obj.RangeFar = 100

	if got := FarRange(obj); got != 800 {
		t.Errorf("FarRange = %v, want range 800", got)
	}
	obj.Pos.X = 700
	if got := Assess(obj, math.Vec3{}, nil).Decision; got != DrawDetailed {
		t.Errorf("decision = %v, want detailed", got)
	}
}

func TestAssessOutOfRange(t *testing.T) {
	obj := objectAt(1000, 0, 0, 10)
	r := Assess(obj, math.Vec3{}, nil)
	if r.Decision != Skip || !r.OutOfRange {
		t.Errorf("Assess = %+v, want out of range skip", r)
	}

	obj = objectAt(10, 0, 0, 100)
	r = Assess(obj, math.Vec3{Z: 1000}, &scene.CloudLayer{Altitude: 500})
	if r.Decision != Skip || r.OutOfRange {
		t.Errorf("Assess = %+v, want occluded skip", r)
	}
}

func TestFarModelDayOnly(t *testing.T) {
	obj := &scene.Object{Flags: scene.FlagFarModelDayOnly}
	obj.Models.Far = model("far")

	if !FarModelVisible(obj, scene.TODDay) {
		t.Error("far model hidden during day")
	}
	if FarModelVisible(obj, scene.TODNight) {
		t.Error("far model visible at night")
	}
	obj.Flags = 0
	if !FarModelVisible(obj, scene.TODNight) {
		t.Error("unrestricted far model hidden at night")
	}
}

func TestNightEligible(t *testing.T) {
	flags := scene.FlagHideNightModel | scene.FlagNightModelAtDawn

	tests := []struct {
		tod  scene.TimeOfDay
		want bool
	}{
		{scene.TODNight, true},
		{scene.TODDawn, true},
		{scene.TODDay, false},
		{scene.TODDusk, false},
		{scene.TODUndefined, false},
	}

	for _, tt := range tests {
		t.Run(tt.tod.String(), func(t *testing.T) {
			if got := NightEligible(flags, tt.tod); got != tt.want {
				t.Errorf("NightEligible = %v, want %v", got, tt.want)
			}
		})
	}

	if !NightEligible(0, scene.TODDay) {
		t.Error("night model without hide flag hidden during day")
	}
	if !NightEligible(scene.FlagHideNightModel|scene.FlagNightModelAtDusk, scene.TODDusk) {
		t.Error("night model with dusk flag hidden at dusk")
	}
}

func TestHideFlags(t *testing.T) {
	tods := []scene.TimeOfDay{scene.TODDay, scene.TODDawn, scene.TODDusk, scene.TODNight}
	for _, tod := range tods {
		if got := DayEligible(scene.FlagHideDayModel, tod); got != (tod == scene.TODDay) {
			t.Errorf("DayEligible(%v) = %v", tod, got)
		}
		if got := DawnEligible(scene.FlagHideDawnModel, tod); got != (tod == scene.TODDawn) {
			t.Errorf("DawnEligible(%v) = %v", tod, got)
		}
		if got := DuskEligible(scene.FlagHideDuskModel, tod); got != (tod == scene.TODDusk) {
			t.Errorf("DuskEligible(%v) = %v", tod, got)
		}
		if !DayEligible(0, tod) || !DawnEligible(0, tod) || !DuskEligible(0, tod) {
			t.Errorf("variant without hide flag hidden at %v", tod)
		}
	}
}

func variants(sel []Selection) []Variant {
	out := make([]Variant, len(sel))
	for i, s := range sel {
		out[i] = s.Variant
	}
	return out
}

func equalVariants(a, b []Variant) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSelectVariants(t *testing.T) {
	full := scene.Models{
		Day:   model("day"),
		Dawn:  model("dawn"),
		Dusk:  model("dusk"),
		Night: model("night"),
		IR:    model("ir"),
	}
	hideAll := scene.FlagHideDayModel | scene.FlagHideDawnModel | scene.FlagHideDuskModel | scene.FlagHideNightModel

	tests := []struct {
		name   string
		models scene.Models
		flags  scene.Flags
		tod    scene.TimeOfDay
		flir   bool
		want   []Variant
	}{
		{"all compose", full, 0, scene.TODDay, false, []Variant{VariantDay, VariantDawn, VariantDusk, VariantNight}},
		{"hidden at day", full, hideAll, scene.TODDay, false, []Variant{VariantDay}},
		{"hidden at dawn", full, hideAll, scene.TODDawn, false, []Variant{VariantDawn}},
		{"night at dawn", full, hideAll | scene.FlagNightModelAtDawn, scene.TODDawn, false, []Variant{VariantDawn, VariantNight}},
		{"flir uses ir", full, 0, scene.TODNight, true, []Variant{VariantIR}},
		{"flir without ir", scene.Models{Day: model("day"), Night: model("night")}, 0, scene.TODNight, true, []Variant{VariantDay}},
		{"nil models skipped", scene.Models{Night: model("night")}, 0, scene.TODDay, false, []Variant{VariantNight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := &scene.Object{Models: tt.models, Flags: tt.flags}
			got := variants(SelectVariants(nil, obj, tt.tod, tt.flir))
			if !equalVariants(got, tt.want) {
				t.Errorf("SelectVariants = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectVariantsLighting(t *testing.T) {
	obj := &scene.Object{Models: scene.Models{Day: model("day"), Night: model("night")}}
	sel := SelectVariants(nil, obj, scene.TODNight, false)
	if len(sel) != 2 || !sel[0].Lit || sel[1].Lit {
		t.Errorf("selections = %+v, want lit day then unlit night", sel)
	}
}
