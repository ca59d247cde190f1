// Package visibility decides per object whether it is drawn this frame,
// whether the far model replaces the detailed one, and which time of day
// model variants apply.
//
// Thresholds are hard cutoffs with no hysteresis: an object flips between
// detailed and far model on the exact frame its distance crosses RangeFar.
package visibility

import (
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// InRange returns the horizontal distance from the camera to the object
// and whether it is within the object's range. An object exactly at its
// range is still drawn.
func InRange(obj *scene.Object, camera math.Vec3) (float32, bool) {
	d := obj.Pos.Distance2D(camera)
	return d, d <= obj.Range
}

// InRangeExtended is InRange with extra slack added to the range, as the
// map view does for helipads and runways.
func InRangeExtended(obj *scene.Object, camera math.Vec3, slack float32) (float32, bool) {
	d := obj.Pos.Distance2D(camera)
	return d, d <= obj.Range+slack
}

// Distance3D combines a horizontal distance with the altitude difference.
func Distance3D(horizontal float32, obj *scene.Object, camera math.Vec3) float32 {
	return math.Hypot2(horizontal, obj.Pos.Z-camera.Z)
}

// OccludedByCloudDeck reports whether the lowest cloud layer hides an
// object: the camera is above the deck and the object below it. Layers
// above the lowest one are not considered.
func OccludedByCloudDeck(lowest *scene.CloudLayer, cameraZ, objectZ float32) bool {
	if lowest == nil {
		return false
	}
	return cameraZ > lowest.Altitude && objectZ < lowest.Altitude
}

// FarRange returns the distance beyond which only the far model is drawn.
// Without a far model it is the object's range, so the switch never
// triggers for an object that passed InRange.
func FarRange(obj *scene.Object) float32 {
	if obj.Models.Far != nil {
		return obj.RangeFar
	}
	return obj.Range
}

// UseFarModel reports whether the far model replaces the detailed models
// at the given horizontal distance.
func UseFarModel(obj *scene.Object, distance float32) bool {
	return distance > FarRange(obj)
}

// FarModelVisible reports whether the far model is drawn at this time of
// day. Lights are drawn with the far model regardless.
func FarModelVisible(obj *scene.Object, tod scene.TimeOfDay) bool {
	if obj.Models.Far == nil {
		return false
	}
	return !obj.Flags.Has(scene.FlagFarModelDayOnly) || tod == scene.TODDay
}

// DayEligible reports whether the day model slot is drawn. Under FLIR the
// slot shows the IR model when the object has one.
func DayEligible(flags scene.Flags, tod scene.TimeOfDay) bool {
	return !flags.Has(scene.FlagHideDayModel) || tod == scene.TODDay
}

// DawnEligible reports whether the dawn model is drawn. Dawn, dusk and
// night variants never show under FLIR.
func DawnEligible(flags scene.Flags, tod scene.TimeOfDay) bool {
	return !flags.Has(scene.FlagHideDawnModel) || tod == scene.TODDawn
}

// DuskEligible reports whether the dusk model is drawn.
func DuskEligible(flags scene.Flags, tod scene.TimeOfDay) bool {
	return !flags.Has(scene.FlagHideDuskModel) || tod == scene.TODDusk
}

// NightEligible reports whether the night model is drawn. With the hide
// flag the night model shows at night, and at dawn or dusk only when the
// matching extra flag is set.
func NightEligible(flags scene.Flags, tod scene.TimeOfDay) bool {
	if !flags.Has(scene.FlagHideNightModel) {
		return true
	}
	switch tod {
	case scene.TODNight:
		return true
	case scene.TODDawn:
		return flags.Has(scene.FlagNightModelAtDawn)
	case scene.TODDusk:
		return flags.Has(scene.FlagNightModelAtDusk)
	default:
		return false
	}
}

// Variant names one detailed model slot.
type Variant int

const (
	VariantDay Variant = iota
	VariantIR
	VariantDawn
	VariantDusk
	VariantNight
)

func (v Variant) String() string {
	switch v {
	case VariantDay:
		return "day"
	case VariantIR:
		return "ir"
	case VariantDawn:
		return "dawn"
	case VariantDusk:
		return "dusk"
	case VariantNight:
		return "night"
	default:
		return "unknown"
	}
}

// Selection is one model to draw. Lit is false for variants drawn with
// lighting disabled: the IR model and the dawn, dusk and night models
// carry their own baked colors.
type Selection struct {
	Variant Variant
	Model   scene.VisualModel
	Lit     bool
}

// SelectVariants appends the detailed models to draw for an object, in
// draw order. More than one variant may be selected; they compose.
// Variants whose model is nil are left out.
func SelectVariants(dst []Selection, obj *scene.Object, tod scene.TimeOfDay, flir bool) []Selection {
	m := &obj.Models

	if DayEligible(obj.Flags, tod) {
		switch {
		case flir && m.IR != nil:
			dst = append(dst, Selection{Variant: VariantIR, Model: m.IR})
		case m.Day != nil:
			dst = append(dst, Selection{Variant: VariantDay, Model: m.Day, Lit: true})
		}
	}
	if flir {
		return dst
	}
	if m.Dawn != nil && DawnEligible(obj.Flags, tod) {
		dst = append(dst, Selection{Variant: VariantDawn, Model: m.Dawn})
	}
	if m.Dusk != nil && DuskEligible(obj.Flags, tod) {
		dst = append(dst, Selection{Variant: VariantDusk, Model: m.Dusk})
	}
	if m.Night != nil && NightEligible(obj.Flags, tod) {
		dst = append(dst, Selection{Variant: VariantNight, Model: m.Night})
	}
	return dst
}

// Decision is the outcome of the generic visibility steps for one object.
type Decision int

const (
	// Skip means the object is not drawn this frame.
	Skip Decision = iota
	// DrawFar means only the far model and lights are drawn.
	DrawFar
	// DrawDetailed means the time of day variants and sub-parts are drawn.
	DrawDetailed
)

func (d Decision) String() string {
	switch d {
	case DrawFar:
		return "far"
	case DrawDetailed:
		return "detailed"
	default:
		return "skip"
	}
}

// Result carries the decision and the distances computed on the way.
type Result struct {
	Decision   Decision
	Distance   float32
	Distance3D float32
	// OutOfRange is set when the object was skipped by the range check,
	// as opposed to cloud occlusion.
	OutOfRange bool
}

// Assess runs the range, cloud deck and far model steps in order.
func Assess(obj *scene.Object, camera math.Vec3, lowest *scene.CloudLayer) Result {
	d, ok := InRange(obj, camera)
	if !ok {
		return Result{Decision: Skip, Distance: d, OutOfRange: true}
	}
	r := Result{Distance: d, Distance3D: Distance3D(d, obj, camera)}
	switch {
	case OccludedByCloudDeck(lowest, camera.Z, obj.Pos.Z):
		r.Decision = Skip
	case UseFarModel(obj, d):
		r.Decision = DrawFar
	default:
		r.Decision = DrawDetailed
	}
	return r
}
