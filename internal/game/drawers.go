package game

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/renderer"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// Wireframe sizes in meters.
const (
	groundGridHalf = 3000
	groundGridStep = 250
	mapGridStep    = 1000

	runwayWidth  = 45
	runwayLength = 1000
	helipadSize  = 20
	rotorRadius  = 7
	rotorHeight  = 3.5

	// rotorRate is the rotor turn rate in radians per millisecond.
	rotorRate = 0.02
	// crossHairSize is the map and HUD cross hair half length in pixels.
	crossHairSize = 12
)

var (
	runwayColor    = [4]float32{0.6, 0.6, 0.6, 1}
	helipadColor   = [4]float32{0.9, 0.9, 0.9, 1}
	rotorColor     = [4]float32{0.2, 0.2, 0.2, 1}
	ropeColor      = [4]float32{0.9, 0.8, 0.5, 1}
	smokeColor     = [4]float32{0.5, 0.5, 0.5, 1}
	gridColor      = [4]float32{0, 0, 0, 1}
	crossHairColor = [4]float32{0, 1, 0, 1}
)

// SmokeTrail is the Data of a smoke object: puff positions in world
// space.
type SmokeTrail struct {
	Puffs []math.Vec3
}

// Drawers draws the viewer's wireframe stand-ins for terrain, runways,
// helipads, rotors, hoist ropes, smoke and the overlays.
type Drawers struct {
	renderer.NopDrawers
	dev device.Device
}

// NewDrawers creates drawers issuing lines to dev.
func NewDrawers(dev device.Device) *Drawers {
	return &Drawers{dev: dev}
}

// Foundations draws a ground grid around the camera.
func (d *Drawers) Foundations(dc *renderer.DrawContext) {
	base := dc.Scene.BaseColor
	if dc.FLIR {
		base = scene.Color{G: 0.2}
	}
	d.dev.Color(base.RGBA(1))
	d.dev.DrawLines(grid(math.ToRender(dc.CameraPos()), groundGridHalf, groundGridStep))
}

func (d *Drawers) Runway(dc *renderer.DrawContext, obj *scene.Object, _ float32) {
	d.dev.Color(runwayColor)
	d.dev.DrawLines(rect(runwayWidth, runwayLength))
}

func (d *Drawers) Helipad(dc *renderer.DrawContext, obj *scene.Object, _ float32) {
	d.helipad(helipadSize)
}

func (d *Drawers) helipad(size float32) {
	h := size / 4
	d.dev.Color(helipadColor)
	d.dev.DrawLines(append(rect(size, size),
		mgl32.Vec3{-h, 0, -h}, mgl32.Vec3{-h, 0, h},
		mgl32.Vec3{h, 0, -h}, mgl32.Vec3{h, 0, h},
		mgl32.Vec3{-h, 0, 0}, mgl32.Vec3{h, 0, 0},
	))
}

// Rotors draws a two blade rotor turning with simulation time.
func (d *Drawers) Rotors(dc *renderer.DrawContext, obj *scene.Object) {
	a := gomath.Mod(float64(dc.Clock.Millitime)*rotorRate, 2*gomath.Pi)
	x := float32(gomath.Cos(a)) * rotorRadius
	z := float32(gomath.Sin(a)) * rotorRadius
	d.dev.Color(rotorColor)
	d.dev.DrawLines([]mgl32.Vec3{
		{-x, rotorHeight, -z}, {x, rotorHeight, z},
		{z, rotorHeight, -x}, {-z, rotorHeight, x},
	})
}

// HoistDeployment draws the rope from the basket up to the aircraft.
func (d *Drawers) HoistDeployment(dc *renderer.DrawContext, obj *scene.Object) {
	h := obj.Aircraft.Hoist
	d.dev.Color(ropeColor)
	d.dev.DrawLines(append(rect(1, 1),
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, h.RopeOut, 0},
	))
}

// Smoke draws the trail puffs as points.
func (d *Drawers) Smoke(dc *renderer.DrawContext, obj *scene.Object) {
	trail, ok := obj.Data.(*SmokeTrail)
	if !ok || len(trail.Puffs) == 0 {
		return
	}
	pts := make([]mgl32.Vec3, len(trail.Puffs))
	for i, p := range trail.Puffs {
		pts[i] = math.ToRender(p)
	}
	d.dev.Color(smokeColor)
	d.dev.DrawPoints(pts)
}

func (d *Drawers) RunwayMap(dc *renderer.DrawContext, obj *scene.Object, _ float32) {
	d.dev.Color(runwayColor)
	d.dev.DrawLines(rect(runwayWidth, runwayLength))
}

// HelipadMap draws helipads at icon size so they stay visible zoomed out.
func (d *Drawers) HelipadMap(dc *renderer.DrawContext, obj *scene.Object, iconLen float32) {
	d.helipad(max(iconLen, helipadSize))
}

// MapGrids draws kilometer lines over the map area.
func (d *Drawers) MapGrids(dc *renderer.DrawContext) {
	half := float32(gomath.Ceil(float64(dc.MapRadius/mapGridStep))+1) * mapGridStep
	d.dev.Color(gridColor)
	d.dev.DrawLines(grid(math.ToRender(dc.CameraPos()), half, mapGridStep))
}

func (d *Drawers) MapCrossHairs(dc *renderer.DrawContext) {
	d.crossHair(dc)
}

func (d *Drawers) HUD(dc *renderer.DrawContext, player *scene.Object) {
	d.crossHair(dc)
}

func (d *Drawers) crossHair(dc *renderer.DrawContext) {
	x, y := float32(dc.Width)/2, float32(dc.Height)/2
	d.dev.Color(crossHairColor)
	d.dev.DrawLines([]mgl32.Vec3{
		{x - crossHairSize, y, 0}, {x + crossHairSize, y, 0},
		{x, y - crossHairSize, 0}, {x, y + crossHairSize, 0},
	})
}
