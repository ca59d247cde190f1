package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// Cockpit rides inside the player object looking through its windscreen,
// offset by the operator look-around direction.
type Cockpit struct{}

// Target returns the player object.
func (Cockpit) Target(s *scene.Scene) *scene.Object {
	return s.Player()
}

// Place composes, innermost last: look-around pitch and heading, the
// cockpit offset, the object bank, pitch and heading, and the object
// position. The camera position is the object position.
func (Cockpit) Place(s *scene.Scene, obj *scene.Object) Placement {
	if obj == nil {
		p := defaultPlacement()
		p.InCockpit, p.EarInCockpit = true, true
		return p
	}

	look := s.Camera.CockpitDir
	dir := obj.Dir

	var offset math.Vec3
	var groundPitch float32
	if a := obj.Aircraft; a != nil {
		offset = a.CockpitOffset
		groundPitch = a.GroundPitchOffset
	}

	view := mgl32.HomogRotate3DX(look.Pitch).
		Mul4(mgl32.HomogRotate3DY(look.Heading)).
		Mul4(math.Translation(offset.Scale(-1))).
		Mul4(mgl32.HomogRotate3DZ(dir.Bank)).
		Mul4(mgl32.HomogRotate3DX(dir.Pitch + groundPitch)).
		Mul4(mgl32.HomogRotate3DY(dir.Heading)).
		Mul4(math.Translation(obj.Pos.Scale(-1)))

	p := Placement{
		Pos:  obj.Pos,
		View: view,
		Dir: math.Direction{
			Heading: float32(math.SanitizeRadians(float64(dir.Heading + look.Heading))),
			Pitch:   float32(math.SanitizeRadians(float64(dir.Pitch + look.Pitch))),
			Bank:    dir.Bank,
		},
		InCockpit:    true,
		EarInCockpit: true,
	}
	p.addRot(math.HeadingMat3(-float64(dir.Heading)))
	p.addRot(math.PitchMat3(-float64(dir.Pitch)))
	// Bank is already of the sign the listener frame expects.
	p.addRot(math.BankMat3(float64(dir.Bank)))
	p.addRot(math.HeadingMat3(-float64(look.Heading)))
	p.addRot(math.PitchMat3(-float64(look.Pitch)))
	return p
}
