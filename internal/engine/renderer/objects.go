package renderer

import (
	"github.com/sar2/sar2/internal/engine/audio"
	"github.com/sar2/sar2/internal/engine/visibility"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// drawObject draws one object of the main view. Every branch leaves the
// matrix stack as it found it.
func (r *Renderer) drawObject(dc *DrawContext, index int, obj *scene.Object) {
	switch obj.Type {
	case scene.TypeAircraft:
		r.drawAircraft(dc, index, obj)
	case scene.TypeStatic, scene.TypeAutomobile, scene.TypeWatercraft, scene.TypeFuelTank:
		r.drawVehicle(dc, obj)
	case scene.TypeGround:
		r.drawGround(dc, obj)
	case scene.TypeRunway:
		r.drawRunway(dc, obj)
	case scene.TypeHelipad:
		r.drawHelipad(dc, obj)
	case scene.TypeHuman:
		r.drawHuman(dc, obj)
	case scene.TypeSmoke:
		r.drawSmoke(dc, obj)
	case scene.TypeFire, scene.TypeExplosion:
		r.drawBillboard(dc, obj)
	case scene.TypePremodeled:
		r.drawPremodeled(dc, obj)
	}
}

// pushHeading pushes the object translation and heading. The caller adds
// the attitude after drawing anything that only follows heading, such as
// the shadow.
func (r *Renderer) pushHeading(obj *scene.Object) {
	r.dev.PushMatrix()
	r.dev.MultMatrix(math.Translation(obj.Pos).Mul4(math.HeadingRotation(obj.Dir.Heading)))
}

func (r *Renderer) applyAttitude(obj *scene.Object) {
	r.dev.MultMatrix(math.AttitudeRotation(obj.Dir.Pitch, obj.Dir.Bank))
}

func (r *Renderer) pushModel(obj *scene.Object) {
	r.dev.PushMatrix()
	r.dev.MultMatrix(math.ModelMatrix(obj.Pos, obj.Dir))
}

// drawFar draws the far model and lights of a distant object.
func (r *Renderer) drawFar(dc *DrawContext, obj *scene.Object) {
	r.pushModel(obj)
	r.polygonOffsetOn(obj, dc.Options.PolygonOffsetFactor)
	r.drawFarModel(dc, obj)
	r.drawLights(dc, obj)
	r.polygonOffsetOff(obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

func (r *Renderer) drawVehicle(dc *DrawContext, obj *scene.Object) {
	res := visibility.Assess(obj, dc.Camera.Pos, dc.LowestCloud)
	switch res.Decision {
	case visibility.Skip:
		return
	case visibility.DrawFar:
		r.drawFar(dc, obj)
		return
	}

	r.pushHeading(obj)
	r.drawers.Shadow(dc, obj)
	r.applyAttitude(obj)
	r.polygonOffsetOn(obj, dc.Options.PolygonOffsetFactor)
	r.drawVariants(dc, obj)
	r.drawLights(dc, obj)
	r.polygonOffsetOff(obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

func (r *Renderer) drawGround(dc *DrawContext, obj *scene.Object) {
	if _, ok := visibility.InRange(obj, dc.Camera.Pos); !ok {
		return
	}
	if visibility.OccludedByCloudDeck(dc.LowestCloud, dc.Camera.Pos.Z, obj.Pos.Z) {
		return
	}

	r.pushModel(obj)
	r.polygonOffsetOn(obj, dc.Options.PolygonOffsetFactor)
	r.drawVariants(dc, obj)
	r.drawLights(dc, obj)
	r.polygonOffsetOff(obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

// drawRunway does not draw runways above the camera.
func (r *Renderer) drawRunway(dc *DrawContext, obj *scene.Object) {
	cam := dc.Camera.Pos
	if visibility.OccludedByCloudDeck(dc.LowestCloud, cam.Z, obj.Pos.Z) {
		return
	}
	if cam.Z < obj.Pos.Z {
		return
	}
	d, ok := visibility.InRange(obj, cam)
	if !ok {
		return
	}

	r.pushModel(obj)
	r.polygonOffsetOn(obj, dc.Options.PolygonOffsetFactor)
	r.drawers.Runway(dc, obj, visibility.Distance3D(d, obj, cam))
	r.polygonOffsetOff(obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

func (r *Renderer) drawHelipad(dc *DrawContext, obj *scene.Object) {
	cam := dc.Camera.Pos
	if visibility.OccludedByCloudDeck(dc.LowestCloud, cam.Z, obj.Pos.Z) {
		return
	}
	d, ok := visibility.InRange(obj, cam)
	if !ok {
		return
	}

	r.pushModel(obj)
	r.polygonOffsetOn(obj, dc.Options.PolygonOffsetFactor)
	r.drawers.Helipad(dc, obj, visibility.Distance3D(d, obj, cam))
	r.polygonOffsetOff(obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

func (r *Renderer) drawHuman(dc *DrawContext, obj *scene.Object) {
	if _, ok := visibility.InRange(obj, dc.Camera.Pos); !ok {
		return
	}
	if visibility.OccludedByCloudDeck(dc.LowestCloud, dc.Camera.Pos.Z, obj.Pos.Z) {
		return
	}

	r.pushHeading(obj)
	r.drawers.Shadow(dc, obj)
	r.applyAttitude(obj)
	r.drawers.Human(dc, obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

// drawSmoke draws a smoke trail. Trail puffs are in world space, so no
// object transform is pushed.
func (r *Renderer) drawSmoke(dc *DrawContext, obj *scene.Object) {
	if _, ok := visibility.InRange(obj, dc.Camera.Pos); !ok {
		return
	}
	if obj.Data != nil && dc.Options.SmokeTrails {
		r.drawers.Smoke(dc, obj)
	}
	r.postDrawReset()
}

// drawBillboard draws fire and explosions turned to face the camera.
func (r *Renderer) drawBillboard(dc *DrawContext, obj *scene.Object) {
	if _, ok := visibility.InRange(obj, dc.Camera.Pos); !ok {
		return
	}

	face := math.DirFromPos(dc.Camera.Pos, obj.Pos)
	r.dev.PushMatrix()
	r.dev.MultMatrix(math.Translation(obj.Pos).
		Mul4(math.HeadingRotation(face.Heading)).
		Mul4(math.AttitudeRotation(face.Pitch, 0)))
	if obj.Data != nil {
		if obj.Type == scene.TypeFire {
			r.drawers.Fire(dc, obj)
		} else {
			r.drawers.Explosion(dc, obj)
		}
	}
	r.postDrawReset()
	r.dev.PopMatrix()
}

func (r *Renderer) drawPremodeled(dc *DrawContext, obj *scene.Object) {
	cam := dc.Camera.Pos
	d, ok := visibility.InRange(obj, cam)
	if !ok {
		return
	}
	if visibility.OccludedByCloudDeck(dc.LowestCloud, cam.Z, obj.Pos.Z) {
		return
	}

	r.pushModel(obj)
	r.drawers.Premodeled(dc, obj, visibility.Distance3D(d, obj, cam), false)
	r.drawLights(dc, obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

// drawAircraft draws an aircraft and drives its sounds. Aircraft out of
// range have their engine muted. Every aircraft that passes the range
// and cloud checks advances its engine sound exactly once.
func (r *Renderer) drawAircraft(dc *DrawContext, index int, obj *scene.Object) {
	a := obj.Aircraft
	if a == nil {
		return
	}
	player := index == dc.Scene.PlayerIndex
	if player {
		r.recordPlayer(dc, obj, a)
	}

	cam := dc.Camera.Pos
	res := visibility.Assess(obj, cam, dc.LowestCloud)
	if res.OutOfRange {
		r.audio.MuteEngine(obj)
		return
	}
	if res.Decision == visibility.Skip {
		return
	}

	engine := audio.EngineUpdate{
		Running:  a.EngineRunning,
		Throttle: a.Throttle,
		Distance: res.Distance3D,
	}

	if res.Decision == visibility.DrawFar {
		r.audio.AdvanceEngine(obj, engine)
		r.drawFar(dc, obj)
		return
	}

	if a.Hoist.Deployed() {
		r.dev.PushMatrix()
		r.dev.MultMatrix(math.Translation(a.Hoist.RopeEnd).Mul4(math.HeadingRotation(a.Hoist.Heading)))
		r.drawers.HoistDeployment(dc, obj)
		r.dev.PopMatrix()
	}

	r.pushHeading(obj)
	r.drawers.Shadow(dc, obj)
	r.applyAttitude(obj)
	r.polygonOffsetOn(obj, dc.Options.PolygonOffsetFactor)

	if player {
		engine.EarInCockpit = dc.Camera.EarInCockpit
		r.audio.AdvanceEngine(obj, engine)
		r.drawers.SpotLight(dc, obj)
		if dc.Camera.InCockpit {
			dc.Player.Cockpit = obj
			r.polygonOffsetOff(obj)
			r.dev.PopMatrix()
			return
		}
	} else {
		r.audio.AdvanceEngine(obj, engine)
	}

	r.drawVariants(dc, obj)
	r.drawers.Parts(dc, obj)
	r.drawers.FuelTanks(dc, obj)
	r.drawLights(dc, obj)
	r.drawers.Rotors(dc, obj)
	r.polygonOffsetOff(obj)
	r.postDrawReset()
	r.dev.PopMatrix()
}

// recordPlayer stores the player aircraft state and updates the stall
// and overspeed warnings when event sounds are on.
func (r *Renderer) recordPlayer(dc *DrawContext, obj *scene.Object, a *scene.Aircraft) {
	dc.recordPlayer(obj, a)
	if !dc.Options.EventSounds {
		return
	}
	dc.Player.Stall = r.audio.UpdateStall(obj, audio.StallInput{
		FlightModel: a.FlightModel,
		Landed:      a.Landed,
		Speed:       a.Airspeed,
		StallSpeed:  a.StallSpeed,
	})
	r.audio.UpdateOverspeed(obj, dc.Player.Overspeed)
}
