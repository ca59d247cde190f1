package scene

import "github.com/sar2/sar2/pkg/math"

// ObjectType tags the drawing path an object takes.
type ObjectType int

const (
	TypeGarbage ObjectType = iota
	TypeStatic
	TypeAutomobile
	TypeWatercraft
	TypeAircraft
	TypeGround
	TypeRunway
	TypeHelipad
	TypeHuman
	TypeSmoke
	TypeFire
	TypeExplosion
	TypeChemicalSpray
	TypeFuelTank
	TypePremodeled
)

var objectTypeNames = [...]string{
	TypeGarbage:       "garbage",
	TypeStatic:        "static",
	TypeAutomobile:    "automobile",
	TypeWatercraft:    "watercraft",
	TypeAircraft:      "aircraft",
	TypeGround:        "ground",
	TypeRunway:        "runway",
	TypeHelipad:       "helipad",
	TypeHuman:         "human",
	TypeSmoke:         "smoke",
	TypeFire:          "fire",
	TypeExplosion:     "explosion",
	TypeChemicalSpray: "chemical_spray",
	TypeFuelTank:      "fuel_tank",
	TypePremodeled:    "premodeled",
}

func (t ObjectType) String() string {
	if t < 0 || int(t) >= len(objectTypeNames) {
		return "unknown"
	}
	return objectTypeNames[t]
}

// Flags select model variants and per-object render state.
type Flags uint32

const (
	// FlagHideDayModel shows the day model only during TODDay.
	FlagHideDayModel Flags = 1 << iota
	// FlagHideDawnModel shows the dawn model only during TODDawn.
	FlagHideDawnModel
	// FlagHideDuskModel shows the dusk model only during TODDusk.
	FlagHideDuskModel
	// FlagHideNightModel shows the night model only during TODNight,
	// widened by FlagNightModelAtDawn and FlagNightModelAtDusk.
	FlagHideNightModel
	FlagNightModelAtDawn
	FlagNightModelAtDusk
	// FlagFarModelDayOnly hides the far model outside TODDay.
	FlagFarModelDayOnly

	FlagNoDepthTest
	FlagShadeModelSmooth
	FlagPolygonOffset
	FlagPolygonOffsetReverse
	FlagPolygonOffsetWriteDepth
)

// Has reports whether all bits of x are set.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// VisualModel is prepared geometry that can be replayed into the current
// transform, such as a compiled display list.
type VisualModel interface {
	Draw()
}

// Models is the closed set of visual variants an object may carry. Any
// field may be nil.
type Models struct {
	Day   VisualModel
	Dawn  VisualModel
	Dusk  VisualModel
	Night VisualModel
	Far   VisualModel
	// IR replaces the day model in FLIR mode.
	IR VisualModel
}

// LightFlags describe an object light.
type LightFlags uint8

const (
	LightOn LightFlags = 1 << iota
	LightStrobe
	LightSpot
	// LightAttenuate lights are real GL lights, not drawn as points.
	LightAttenuate
)

// Has reports whether all bits of x are set.
func (f LightFlags) Has(x LightFlags) bool {
	return f&x == x
}

// Light is a point light attached to an object.
type Light struct {
	// Pos is the offset from the object center in object space.
	Pos    math.Vec3
	Color  Color
	Alpha  float32
	Radius float32
	Flags  LightFlags

	// Strobe timing in simulation milliseconds. NextOn is the time the
	// strobe next turns on while it is off, NextOff while it is on.
	NextOn      int64
	NextOff     int64
	IntervalOn  int64
	IntervalOff int64
}

// Hoist is the rescue hoist of an aircraft.
type Hoist struct {
	// RopeEnd is the world position of the rope end (basket).
	RopeEnd math.Vec3
	// RopeOut is the currently visible rope length.
	RopeOut float32
	// Heading of the basket.
	Heading float32
}

// Deployed reports whether any rope is out.
func (h *Hoist) Deployed() bool {
	return h != nil && h.RopeOut > 0
}

// WheelBrakes is the wheel brake state of an aircraft.
type WheelBrakes int

const (
	WheelBrakesOff WheelBrakes = iota
	WheelBrakesOn
	WheelBrakesParking
)

// FlightModel is the active flight model of an aircraft.
type FlightModel int

const (
	FlightModelHelicopter FlightModel = iota
	FlightModelAirplane
	FlightModelSlew
)

// Aircraft holds the aircraft state the renderer reads.
type Aircraft struct {
	CockpitOffset     math.Vec3
	GroundPitchOffset float32

	Hoist *Hoist

	FlightModel FlightModel
	WheelBrakes WheelBrakes
	AirBrakes   bool
	Autopilot   bool

	// Airspeed relative to the air mass, meters per cycle.
	Airspeed float32
	// OverspeedExpected is the airspeed at which overspeed begins, 0 if
	// the airframe has no overspeed warning.
	OverspeedExpected float32
	// StallSpeed is the airspeed below which an airborne airplane stalls,
	// with flaps already applied. Zero disables the warning.
	StallSpeed float32
	Landed     bool

	// Throttle in [0, 1] and whether the engine is running, for engine
	// sound updates.
	Throttle      float32
	EngineRunning bool

	// Intercepts is the planned course drawn on the map. Legs before
	// CurrentIntercept have been flown.
	Intercepts       []math.Vec3
	CurrentIntercept int
}

// Overspeed reports whether the aircraft is past its overspeed threshold.
func (a *Aircraft) Overspeed() bool {
	return a.OverspeedExpected > 0 && a.Airspeed > a.OverspeedExpected
}

// Object is a simulated scene object.
type Object struct {
	Name  string
	Type  ObjectType
	Flags Flags

	Pos math.Vec3
	Dir math.Direction

	// Range is the horizontal visibility range. RangeFar is the distance
	// past which the far model is drawn instead of the detailed one.
	Range    float32
	RangeFar float32

	Models Models
	Lights []Light

	// Temperature in [0, 1] for FLIR tinting.
	Temperature float32

	// Aircraft is set for TypeAircraft objects.
	Aircraft *Aircraft

	// Data carries type specific state owned by the drawer of this type
	// (runway, helipad, human, smoke, fire, explosion, premodeled).
	Data any
}
