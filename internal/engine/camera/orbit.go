package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// Spot orbits the camera target object at the operator spot offset.
type Spot struct{}

// Target returns the configured camera target, or the player.
func (Spot) Target(s *scene.Scene) *scene.Object {
	return configuredTarget(s)
}

// Place orbits obj at the spot distance and direction.
func (Spot) Place(s *scene.Scene, obj *scene.Object) Placement {
	if obj == nil {
		return defaultPlacement()
	}
	return orbit(obj.Pos, obj.Dir.Heading, s.Camera.SpotDir, s.Camera.SpotDist)
}

// Hoist orbits the player object, or the end of its rescue hoist rope
// while the rope is out.
type Hoist struct{}

// Target returns the player object.
func (Hoist) Target(s *scene.Scene) *scene.Object {
	return s.Player()
}

// Place orbits the hoist focus at the hoist distance and direction.
func (Hoist) Place(s *scene.Scene, obj *scene.Object) Placement {
	if obj == nil {
		return defaultPlacement()
	}
	return orbit(HoistFocus(obj), obj.Dir.Heading, s.Camera.HoistDir, s.Camera.HoistDist)
}

// HoistFocus returns the rope end of a deployed hoist, otherwise the
// object position.
func HoistFocus(obj *scene.Object) math.Vec3 {
	if a := obj.Aircraft; a != nil && a.Hoist.Deployed() {
		return a.Hoist.RopeEnd
	}
	return obj.Pos
}

// orbit places the camera at a spherical offset from focus expressed in
// the frame of an object with the given heading. The camera never goes
// below MinAltitude.
func orbit(focus math.Vec3, heading float32, off math.Direction, dist float32) Placement {
	sinH := float32(gomath.Sin(float64(heading)))
	cosH := float32(gomath.Cos(float64(heading)))
	cosP := float32(gomath.Cos(float64(off.Pitch)))

	// Unit delta from focus to camera in the object frame.
	dxu := float32(gomath.Sin(float64(off.Heading))) * cosP
	dyu := float32(gomath.Cos(float64(off.Heading))) * cosP
	dzu := -float32(gomath.Sin(float64(off.Pitch)))

	dx, dy, dz := dxu*dist, dyu*dist, dzu*dist

	cam := math.Vec3{
		X: focus.X + cosH*dx + sinH*dy,
		Y: focus.Y - sinH*dx + cosH*dy,
		Z: max(focus.Z+dz, MinAltitude),
	}

	up := math.Vec3{
		X: -(sinH*dyu + cosH*dxu) * dzu,
		Y: -(cosH*dyu - sinH*dxu) * dzu,
		Z: cosP,
	}

	p := Placement{
		Pos:  cam,
		Dir:  math.DirFromPos(cam, focus),
		View: mgl32.LookAtV(math.ToRender(cam), math.ToRender(focus), math.ToRender(up)),
	}
	p.addRot(math.HeadingMat3(-float64(off.Heading + heading + gomath.Pi)))
	p.addRot(math.PitchMat3(float64(off.Pitch)))
	return p
}

// Tower watches the camera target from a fixed tower position.
type Tower struct{}

// Target returns the configured camera target, or the player.
func (Tower) Target(s *scene.Scene) *scene.Object {
	return configuredTarget(s)
}

// Place looks from the tower position at obj with a level horizon.
func (Tower) Place(s *scene.Scene, obj *scene.Object) Placement {
	if obj == nil {
		return defaultPlacement()
	}

	tower := s.Camera.TowerPos
	tower.Z = max(tower.Z, MinAltitude)

	d := obj.Pos.Sub(tower)
	horizontal := float64(obj.Pos.Distance2D(tower))

	p := Placement{
		Pos:  tower,
		Dir:  math.DirFromPos(tower, obj.Pos),
		View: mgl32.LookAtV(math.ToRender(tower), math.ToRender(obj.Pos), mgl32.Vec3{0, 1, 0}),
	}
	p.addRot(math.HeadingMat3(-(gomath.Pi/2 - gomath.Atan2(float64(d.Y), float64(d.X)))))
	p.addRot(math.PitchMat3(gomath.Atan2(float64(d.Z), horizontal)))
	return p
}
