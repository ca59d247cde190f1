package scene

import "github.com/sar2/sar2/pkg/math"

// CameraRef is the camera reference mode selected by the operator.
type CameraRef int

const (
	CameraCockpit CameraRef = iota
	CameraSpot
	CameraTower
	CameraHoist
	CameraMap
)

func (r CameraRef) String() string {
	switch r {
	case CameraCockpit:
		return "cockpit"
	case CameraSpot:
		return "spot"
	case CameraTower:
		return "tower"
	case CameraHoist:
		return "hoist"
	case CameraMap:
		return "map"
	default:
		return "unknown"
	}
}

// MaxCameraRotMatrices is the capacity of the cached camera orientation
// matrices.
const MaxCameraRotMatrices = 5

// CameraState is the camera configuration and per-frame camera outputs
// owned by the scene.
type CameraState struct {
	Ref CameraRef

	// Target is the object index looked at by spot and tower views, -1
	// for the player.
	Target int

	// FOV is the vertical field of view in radians.
	FOV float32

	// CockpitDir is the look-around offset inside the cockpit.
	CockpitDir math.Direction

	SpotDir  math.Direction
	SpotDist float32

	HoistDir  math.Direction
	HoistDist float32

	TowerPos math.Vec3

	// MapPos is the map view camera position; its altitude sets zoom.
	MapPos math.Vec3

	// RotMatrices are recomputed every frame; only the first
	// RotMatrixCount entries are valid.
	RotMatrices    [MaxCameraRotMatrices]math.Mat3
	RotMatrixCount int

	// EarPos follows the camera position for positional audio.
	EarPos math.Vec3
}

// DefaultCameraState returns a cockpit camera with a 40 degree field of
// view and moderate spot and hoist distances.
func DefaultCameraState() CameraState {
	return CameraState{
		Ref:       CameraCockpit,
		Target:    -1,
		FOV:       math.DegToRad(40),
		SpotDist:  40,
		HoistDist: 20,
		MapPos:    math.Vec3{Z: 1000},
	}
}

// SetRotMatrices stores the valid orientation matrices for this frame.
// Entries past capacity are dropped.
func (c *CameraState) SetRotMatrices(m []math.Mat3) {
	n := copy(c.RotMatrices[:], m)
	c.RotMatrixCount = n
}

// ValidRotMatrices returns the matrices computed this frame.
func (c *CameraState) ValidRotMatrices() []math.Mat3 {
	return c.RotMatrices[:c.RotMatrixCount]
}
