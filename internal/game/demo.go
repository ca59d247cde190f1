package game

import (
	gomath "math"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// Demo scene layout.
const (
	hoverAltitude = 60
	ropeLength    = 20

	patrolRadius   = 800
	patrolAltitude = 300
	// patrolRate is the patrol turn rate in radians per second.
	patrolRate = 0.1
)

var (
	patrolCenter = math.Vec3{Y: 1500, Z: patrolAltitude}

	playerColor   = [4]float32{1, 0.85, 0, 1}
	patrolColor   = [4]float32{0.8, 0.1, 0.1, 1}
	buildingColor = [4]float32{0.55, 0.45, 0.35, 1}
	truckColor    = [4]float32{0.1, 0.3, 0.8, 1}
	boatColor     = [4]float32{0.95, 0.95, 0.95, 1}
	tankColor     = [4]float32{0.7, 0.7, 0.1, 1}
	nightColor    = [4]float32{1, 0.9, 0.5, 1}
	farColor      = [4]float32{0.3, 0.3, 0.3, 1}
	// irColor leaves the FLIR tint set by the renderer.
	irColor = [4]float32{}
)

// Demo holds the demo scene and the objects the viewer animates.
type Demo struct {
	Scene  *scene.Scene
	Player *scene.Object
	Patrol *scene.Object
	Smoke  *scene.Object
}

// NewDemo builds a rescue scene: the player helicopter hovering with the
// hoist out near a helipad, an airplane circling a runway, a few buildings
// and vehicles and a smoking fire.
func NewDemo(dev device.Device) *Demo {
	s := scene.New()
	s.TimeOfDay = scene.TODDay
	s.SkyNominal = scene.Color{R: 0.55, G: 0.7, B: 0.95}
	s.LightColor = scene.Color{R: 1, G: 1, B: 0.95}
	s.LightPos = math.Vec3{X: 0.3, Y: 0.4, Z: 0.87}
	s.AtmosphereDistCoeff = 0.9
	s.AtmosphereDensityCoeff = 0.3
	s.BaseColor = scene.Color{R: 0.3, G: 0.5, B: 0.25}
	s.SetCloudLayers([]scene.CloudLayer{{Altitude: 1200}, {Altitude: 4000}})
	s.Camera.Ref = scene.CameraSpot
	s.Camera.SpotDir = math.Direction{Heading: 0.6, Pitch: 0.25}
	s.Camera.TowerPos = math.Vec3{X: 250, Y: 60, Z: 15}

	d := &Demo{Scene: s}

	d.Player = &scene.Object{
		Name:     "player",
		Type:     scene.TypeAircraft,
		Pos:      math.Vec3{X: 280, Y: 120, Z: hoverAltitude},
		Range:    8000,
		RangeFar: 1500,
		Models: scene.Models{
			Day: Box(dev, playerColor, 3, 14, 3),
			Far: Box(dev, farColor, 3, 14, 3),
			IR:  Box(dev, irColor, 3, 14, 3),
		},
		Lights: []scene.Light{
			{Pos: math.Vec3{Z: 3.2}, Color: scene.Color{R: 1}, Alpha: 1, Radius: 2, Flags: scene.LightOn},
		},
		Temperature: 0.8,
		Aircraft: &scene.Aircraft{
			CockpitOffset: math.Vec3{Y: 4, Z: 1.5},
			Hoist: &scene.Hoist{
				RopeEnd: math.Vec3{X: 280, Y: 120, Z: hoverAltitude - ropeLength},
				RopeOut: ropeLength,
			},
			FlightModel:       scene.FlightModelHelicopter,
			OverspeedExpected: 9,
			Throttle:          0.7,
			EngineRunning:     true,
			Intercepts: []math.Vec3{
				{X: 300, Y: 100},
				{X: 0, Y: 1000},
				{X: 0, Y: 2000},
			},
		},
	}
	s.PlayerIndex = s.AddObject(d.Player)

	d.Patrol = &scene.Object{
		Name:     "patrol",
		Type:     scene.TypeAircraft,
		Range:    12000,
		RangeFar: 2500,
		Models: scene.Models{
			Day: Box(dev, patrolColor, 12, 10, 2.5),
			Far: Box(dev, farColor, 12, 10, 2.5),
			IR:  Box(dev, irColor, 12, 10, 2.5),
		},
		Temperature: 0.9,
		Aircraft: &scene.Aircraft{
			FlightModel:   scene.FlightModelAirplane,
			Airspeed:      2.5,
			StallSpeed:    1.5,
			Throttle:      0.6,
			EngineRunning: true,
		},
	}
	d.UpdatePatrol(0)
	s.AddObject(d.Patrol)

	s.AddObject(&scene.Object{
		Name:  "runway",
		Type:  scene.TypeRunway,
		Pos:   math.Vec3{Y: 2000},
		Range: 10000,
	})
	s.AddObject(&scene.Object{
		Name:  "helipad",
		Type:  scene.TypeHelipad,
		Flags: scene.FlagPolygonOffset,
		Pos:   math.Vec3{X: 300, Y: 100},
		Range: 5000,
	})

	for i, b := range []struct {
		pos     math.Vec3
		w, l, h float32
	}{
		{math.Vec3{X: 200, Y: 150}, 20, 30, 12},
		{math.Vec3{X: 360, Y: 40}, 15, 15, 25},
		{math.Vec3{X: -150, Y: 1900}, 40, 60, 15},
	} {
		s.AddObject(&scene.Object{
			Name:  "building",
			Type:  scene.TypeStatic,
			Flags: scene.FlagHideNightModel | scene.FlagNightModelAtDusk,
			Pos:   b.pos,
			Dir:   math.Direction{Heading: float32(i) * 0.4},
			Range: 6000,
			Models: scene.Models{
				Day:   Box(dev, buildingColor, b.w, b.l, b.h),
				Night: Box(dev, nightColor, b.w, b.l, b.h),
				IR:    Box(dev, irColor, b.w, b.l, b.h),
			},
			Temperature: 0.3,
		})
	}

	s.AddObject(&scene.Object{
		Name:        "truck",
		Type:        scene.TypeAutomobile,
		Pos:         math.Vec3{X: 320, Y: 130},
		Dir:         math.Direction{Heading: 1.2},
		Range:       3000,
		Models:      scene.Models{Day: Box(dev, truckColor, 2.5, 7, 3), IR: Box(dev, irColor, 2.5, 7, 3)},
		Temperature: 0.6,
	})
	s.AddObject(&scene.Object{
		Name:        "boat",
		Type:        scene.TypeWatercraft,
		Pos:         math.Vec3{X: -600, Y: 300},
		Range:       4000,
		Models:      scene.Models{Day: Box(dev, boatColor, 4, 12, 3), IR: Box(dev, irColor, 4, 12, 3)},
		Temperature: 0.5,
	})
	s.AddObject(&scene.Object{
		Name:        "fuel",
		Type:        scene.TypeFuelTank,
		Pos:         math.Vec3{X: 310, Y: 85},
		Range:       2000,
		Models:      scene.Models{Day: Box(dev, tankColor, 1.5, 1.5, 1.5)},
		Temperature: 0.2,
	})
	s.AddObject(&scene.Object{
		Name:  "survivor",
		Type:  scene.TypeHuman,
		Pos:   math.Vec3{X: 280, Y: 120},
		Range: 1500,
	})

	d.Smoke = &scene.Object{
		Name:  "smoke",
		Type:  scene.TypeSmoke,
		Pos:   math.Vec3{X: 360, Y: 40, Z: 25},
		Range: 5000,
		Data:  &SmokeTrail{},
	}
	s.AddObject(d.Smoke)

	return d
}

// UpdatePatrol places the patrol airplane on its circle at time t
// seconds, flying counter-clockwise.
func (d *Demo) UpdatePatrol(t float64) {
	a := t * patrolRate
	d.Patrol.Pos = math.Vec3{
		X: patrolCenter.X + patrolRadius*float32(gomath.Cos(a)),
		Y: patrolCenter.Y + patrolRadius*float32(gomath.Sin(a)),
		Z: patrolCenter.Z,
	}
	// Flying counter-clockwise at angle a from east heads -a from north.
	d.Patrol.Dir = math.Direction{
		Heading: float32(math.SanitizeRadians(-a)),
		Bank:    -0.3,
	}
}

// maxSmokePuffs bounds the smoke trail.
const maxSmokePuffs = 40

// UpdateSmoke adds a puff drifting up from the smoke source and drops the
// oldest once the trail is full.
func (d *Demo) UpdateSmoke(t float64) {
	trail := d.Smoke.Data.(*SmokeTrail)
	for i := range trail.Puffs {
		trail.Puffs[i].Z += 1
		trail.Puffs[i].X += 0.5
	}
	src := d.Smoke.Pos
	src.X += float32(gomath.Sin(t*3)) * 0.5
	trail.Puffs = append(trail.Puffs, src)
	if n := len(trail.Puffs); n > maxSmokePuffs {
		trail.Puffs = trail.Puffs[n-maxSmokePuffs:]
	}
}
