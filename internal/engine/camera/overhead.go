package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// Map looks straight down from the scene map position.
type Map struct{}

// Target returns the player; the map view needs one to be drawn at all.
func (Map) Target(s *scene.Scene) *scene.Object {
	return s.Player()
}

// Place puts the camera at the map position.
func (Map) Place(s *scene.Scene, obj *scene.Object) Placement {
	if obj == nil {
		return defaultPlacement()
	}
	return overhead(s.Camera.MapPos)
}

// Probe looks straight down from an object for the ground contact and
// ground hit checks.
type Probe struct {
	// Object is the probed object index; an invalid index probes the
	// player.
	Object int
}

// Target returns the probed object, or the player.
func (p Probe) Target(s *scene.Scene) *scene.Object {
	if o := s.Object(p.Object); o != nil {
		return o
	}
	return s.Player()
}

// Place puts the camera at the object position.
func (Probe) Place(_ *scene.Scene, obj *scene.Object) Placement {
	if obj == nil {
		return defaultPlacement()
	}
	return overhead(obj.Pos)
}

func overhead(pos math.Vec3) Placement {
	p := Placement{
		Pos:  pos,
		Dir:  math.Direction{Pitch: gomath.Pi / 2},
		View: mgl32.HomogRotate3DX(gomath.Pi / 2).Mul4(math.Translation(pos.Scale(-1))),
	}
	p.addRot(math.HeadingMat3(0))
	p.addRot(math.PitchMat3(-gomath.Pi / 2))
	return p
}
