// Package camera places the view for each camera reference mode.
//
// Every mode is a Variant with the same two steps: resolve the object the
// camera is bound to, then compute a Placement from scratch. Nothing is
// carried between frames except the mode selection itself.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// MinAltitude is the lowest camera altitude for orbiting and tower views.
const MinAltitude = 1

// Placement is the camera computed for one frame.
type Placement struct {
	Pos math.Vec3
	// Dir is the line of sight, heading clockwise from north and pitch
	// positive looking down.
	Dir math.Direction
	// View is the render space modelview of the camera.
	View mgl32.Mat4

	// RotMatrices holds RotCount valid orientation matrices.
	RotMatrices [scene.MaxCameraRotMatrices]math.Mat3
	RotCount    int

	// InCockpit is set when the view is from inside the piloted object,
	// whose exterior is then not drawn.
	InCockpit bool
	// EarInCockpit selects interior engine sounds.
	EarInCockpit bool
}

// Matrices returns the valid orientation matrices.
func (p *Placement) Matrices() []math.Mat3 {
	return p.RotMatrices[:p.RotCount]
}

func (p *Placement) addRot(m math.Mat3) {
	if p.RotCount < len(p.RotMatrices) {
		p.RotMatrices[p.RotCount] = m
		p.RotCount++
	}
}

// Variant is one camera reference mode.
type Variant interface {
	// Target returns the object the camera is bound to, or nil.
	Target(s *scene.Scene) *scene.Object
	// Place computes the camera for target. A nil target yields the
	// default view at the origin looking north.
	Place(s *scene.Scene, target *scene.Object) Placement
}

// ForRef returns the variant for a scene camera reference.
func ForRef(ref scene.CameraRef) Variant {
	switch ref {
	case scene.CameraSpot:
		return Spot{}
	case scene.CameraTower:
		return Tower{}
	case scene.CameraHoist:
		return Hoist{}
	case scene.CameraMap:
		return Map{}
	default:
		return Cockpit{}
	}
}

// Update places the camera for variant v and stores the per-frame outputs
// on the scene camera state.
func Update(s *scene.Scene, v Variant) Placement {
	p := v.Place(s, v.Target(s))
	s.Camera.SetRotMatrices(p.Matrices())
	s.Camera.EarPos = p.Pos
	return p
}

// defaultPlacement looks from the origin toward render -Z with Y up.
func defaultPlacement() Placement {
	return Placement{
		View: mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}),
	}
}

// configuredTarget returns the camera target object, falling back to the
// player when the index names no object.
func configuredTarget(s *scene.Scene) *scene.Object {
	if o := s.Object(s.Camera.Target); o != nil {
		return o
	}
	return s.Player()
}

// DirFromView recovers the camera direction from a modelview matrix.
func DirFromView(m mgl32.Mat4) math.Direction {
	return math.Direction{
		Heading: float32(math.SanitizeRadians(gomath.Pi/2 - gomath.Atan2(float64(m[10]), float64(m[8])))),
		Pitch:   float32(math.SanitizeRadians(gomath.Atan2(float64(m[6]), float64(m[5])))),
		Bank:    float32(math.SanitizeRadians(gomath.Asin(clampUnit(-float64(m[4]))))),
	}
}

func clampUnit(v float64) float64 {
	return gomath.Max(-1, gomath.Min(1, v))
}
