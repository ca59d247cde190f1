package renderer

import (
	gomath "math"

	"github.com/sar2/sar2/internal/clock"
	"github.com/sar2/sar2/internal/engine/atmosphere"
	"github.com/sar2/sar2/internal/engine/camera"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// PlayerState is what the aircraft walk records about the player object
// for the HUD and the deferred cockpit draw.
type PlayerState struct {
	Object *scene.Object
	// Cockpit is set when the player's cockpit is drawn after the scene.
	Cockpit *scene.Object

	FlightModel scene.FlightModel
	WheelBrakes scene.WheelBrakes
	AirBrakes   bool
	Autopilot   bool
	Stall       bool
	Overspeed   bool
}

// DrawContext is the state of one frame, assembled before any object is
// drawn and discarded after the frame is presented.
type DrawContext struct {
	Scene   *scene.Scene
	Options Options
	Clock   clock.Clock

	Width, Height int
	FarClip       float32
	// Aspect is width over height plus the aspect offset option.
	Aspect float32
	// FOV is the vertical field of view in radians.
	FOV float32
	// ViewWidthPerMeter is the visible height in meters at one meter
	// from the camera.
	ViewWidthPerMeter float32

	CameraRef scene.CameraRef
	Camera    camera.Placement
	// CameraDir is recovered from the modelview when the GetCamDir option
	// is set, zero otherwise.
	CameraDir math.Direction

	FLIR       bool
	LightColor scene.Color
	Atmosphere atmosphere.Frame

	LowestCloud  *scene.CloudLayer
	HighestCloud *scene.CloudLayer

	Player PlayerState

	// Map view scale, set only while drawing the map.
	MapDXM, MapDYM float32
	MapRadius      float32
	IconLen        float32
}

// CameraPos returns the camera position of the frame.
func (dc *DrawContext) CameraPos() math.Vec3 {
	return dc.Camera.Pos
}

func newContext(s *scene.Scene, opts Options, clk clock.Clock, width, height int) *DrawContext {
	dc := &DrawContext{
		Scene:        s,
		Options:      opts,
		Clock:        clk,
		Width:        width,
		Height:       height,
		FarClip:      opts.FarClip(),
		FOV:          s.Camera.FOV,
		CameraRef:    s.Camera.Ref,
		FLIR:         opts.FLIR,
		LowestCloud:  s.LowestCloudLayer(),
		HighestCloud: s.HighestCloudLayer(),
	}
	dc.setViewport(width, height)
	return dc
}

// setViewport updates the size dependent view values.
func (dc *DrawContext) setViewport(width, height int) {
	dc.Aspect = float32(width)/float32(height) + dc.Options.AspectOffset
	dc.ViewWidthPerMeter = float32(2 * gomath.Tan(float64(dc.FOV)/2))
}

// recordPlayer copies the player aircraft state shown by the HUD.
func (dc *DrawContext) recordPlayer(obj *scene.Object, a *scene.Aircraft) {
	dc.Player.Object = obj
	dc.Player.FlightModel = a.FlightModel
	dc.Player.WheelBrakes = a.WheelBrakes
	dc.Player.AirBrakes = a.AirBrakes
	dc.Player.Autopilot = a.Autopilot
	dc.Player.Overspeed = a.Overspeed()
}
