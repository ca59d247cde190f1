package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/sar2/sar2/internal/clock"
	"github.com/sar2/sar2/internal/engine/camera"
	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/stategl"
	"github.com/sar2/sar2/internal/engine/visibility"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

type mapMode int

const (
	mapNormal mapMode = iota
	// mapGroundContact selects objects under the probe point.
	mapGroundContact
	// mapGroundHit marks stencil under the probe point.
	mapGroundHit
)

func (m mapMode) probing() bool {
	return m != mapNormal
}

// Probe viewport and projection.
const (
	probeWidth  = 100
	probeHeight = 70
	probeNear   = 0.1
	probeFar    = 10000

	mapNear = 1
	// mapFarMargin is added to the map camera altitude for the far clip.
	mapFarMargin = 100

	// iconScale sizes aircraft icons by field of view times altitude.
	iconScale = 0.05

	// selectBufferBase is the selection buffer size with no objects; four
	// words are added per object.
	selectBufferBase = 512
)

var (
	playerIconColor = [4]float32{1, 1, 0, 1}
	otherIconColor  = [4]float32{1, 0, 0, 1}

	currentLegColor = [4]float32{1, 0.25, 0.25, 1}
	laterLegColor   = [4]float32{0.8, 0, 0, 1}
)

// probeResult is what the probing map modes read back.
type probeResult struct {
	hits   []int
	gotHit bool
}

// DrawMap draws the top down map view and presents it.
func (r *Renderer) DrawMap(s *scene.Scene, opts Options, clk clock.Clock) {
	r.drawMap(s, opts, clk, mapNormal, -1)
}

// GroundContactCheck renders the objects around a probe object from
// straight above into a small off-screen viewport and returns the indices
// of the objects under the probe point, excluding the probe object
// itself. An index that names no object probes the player. Nothing is
// presented.
func (r *Renderer) GroundContactCheck(s *scene.Scene, opts Options, clk clock.Clock, probe int) []int {
	return r.drawMap(s, opts, clk, mapGroundContact, probe).hits
}

// GroundHitCheck renders the ground geometry under a probe object into
// the stencil buffer and reports whether any was under the probe point.
// overWater is set when nothing was hit and the scene base is water.
func (r *Renderer) GroundHitCheck(s *scene.Scene, opts Options, clk clock.Clock, probe int) (gotHit, overWater bool) {
	res := r.drawMap(s, opts, clk, mapGroundHit, probe)
	return res.gotHit, !res.gotHit && s != nil && s.BaseWater
}

func (r *Renderer) drawMap(s *scene.Scene, opts Options, clk clock.Clock, mode mapMode, probe int) probeResult {
	var res probeResult
	if s == nil {
		return res
	}
	width, height := r.display.Size()
	if width <= 0 || height <= 0 || s.Camera.FOV <= 0 {
		return res
	}

	opts.FLIR = false
	dc := newContext(s, opts, clk, width, height)
	nameBase := uint32(len(s.Objects))

	probeIndex := probe
	if s.Object(probeIndex) == nil {
		probeIndex = s.PlayerIndex
	}

	if mode.probing() {
		dc.Width, dc.Height = probeWidth, probeHeight
		dc.setViewport(probeWidth, probeHeight)
		switch mode {
		case mapGroundContact:
			r.dev.BeginSelect(4*len(s.Objects) + selectBufferBase)
		case mapGroundHit:
			r.dev.ClearStencil(0)
			r.st.Enable(stategl.StencilTest)
			r.st.StencilFunc(stategl.Always, 1, 1)
			r.st.StencilOp(stategl.Replace, stategl.Replace, stategl.Replace)
		}
		r.dev.InitNames()
		r.dev.PushName(nameBase)

		r.dev.Viewport(0, 0, probeWidth, probeHeight)
		r.setPerspective(dc.FOV, dc.Aspect, probeNear, probeFar)
		v := camera.Probe{Object: probe}
		dc.Camera = v.Place(s, v.Target(s))
	} else {
		r.dev.Viewport(0, 0, int32(width), int32(height))
		r.setPerspective(dc.FOV, dc.Aspect, mapNear, s.Camera.MapPos.Z+mapFarMargin)
		dc.Camera = camera.Update(s, camera.Map{})
	}
	r.dev.LoadMatrix(dc.Camera.View)
	if opts.GetCamDir {
		dc.CameraDir = camera.DirFromView(dc.Camera.View)
	}

	camZ := dc.Camera.Pos.Z
	dc.MapDYM = camZ * dc.ViewWidthPerMeter
	dc.MapDXM = dc.MapDYM * dc.Aspect
	dc.MapRadius = max(dc.MapDXM, dc.MapDYM) / 2
	dc.IconLen = dc.FOV * camZ * iconScale

	alpha := float32(1)
	mask := device.ColorBuffer | device.DepthBuffer
	if mode == mapGroundHit {
		alpha = 0
		mask |= device.StencilBuffer
	}
	r.dev.ClearColor(s.BaseColor.RGBA(alpha))
	r.dev.Clear(mask)

	r.st.Disable(stategl.Fog)
	r.st.Disable(stategl.Lighting)
	r.st.Disable(stategl.ColorMaterial)
	r.st.Disable(stategl.Blend)
	r.depthTest(false)
	r.st.DepthMask(false)
	r.st.ShadeModel(stategl.Flat)
	r.textures(false, false)

	if mode != mapGroundHit {
		r.drawers.Foundations(dc)
	}
	r.texturedObjects(opts.TexturedObjects)

	for i, obj := range s.Objects {
		if obj == nil {
			continue
		}
		r.objectPrologue(obj)
		r.drawMapObject(dc, mode, i, obj)
	}

	switch mode {
	case mapGroundContact:
		buf, hits := r.dev.EndSelect()
		if hits < 0 {
			r.log.Warn("selection buffer overflow", zap.Int("objects", len(s.Objects)))
		}
		res.hits = objectHits(buf, hits, len(s.Objects), probeIndex)
		r.dev.Viewport(0, 0, int32(width), int32(height))

	case mapGroundHit:
		for _, v := range r.dev.ReadStencil(probeWidth/2, probeHeight/2, 2, 2) {
			if v != 0 {
				res.gotHit = true
				break
			}
		}
		r.st.Disable(stategl.StencilTest)
		r.dev.Viewport(0, 0, int32(width), int32(height))

	default:
		r.st.Disable(stategl.AlphaTest)
		r.st.Disable(stategl.ColorMaterial)
		r.depthTest(false)
		r.textures(false, false)
		r.drawers.MapGrids(dc)

		r.setOrtho2D(width, height)
		r.drawers.MapCrossHairs(dc)
		if p := s.Player(); p != nil {
			r.dev.Color(overlayWhite)
			r.drawers.OutsideAttitude(dc, p)
		}
		r.drawers.Overlay(dc)
		r.display.SwapBuffers()
	}

	r.pollErrors(opts)
	return res
}

// objectHits turns selection hits into object indices, dropping the
// probe object and names that are not objects.
func objectHits(buf []uint32, hits, objects, probe int) []int {
	var out []int
	for _, name := range device.HitNames(buf, hits) {
		i := int(name)
		if i >= objects || i == probe {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (r *Renderer) drawMapObject(dc *DrawContext, mode mapMode, index int, obj *scene.Object) {
	cam := dc.Camera.Pos

	switch obj.Type {
	case scene.TypeStatic, scene.TypeAutomobile, scene.TypeWatercraft, scene.TypeGround:
		if _, ok := visibility.InRange(obj, cam); !ok {
			return
		}
		r.dev.LoadName(uint32(index))
		r.pushGround(obj)
		if obj.Models.Day != nil {
			obj.Models.Day.Draw()
		}
		r.dev.PopMatrix()
		r.postDrawReset()

	case scene.TypeAircraft:
		r.drawMapAircraft(dc, mode, index, obj)

	case scene.TypeHelipad, scene.TypeRunway:
		r.dev.LoadName(uint32(index))
		d, ok := visibility.InRangeExtended(obj, cam, dc.MapRadius)
		if !ok {
			return
		}
		if mode.probing() {
			r.pushModel(obj)
			d3 := visibility.Distance3D(d, obj, cam)
			if obj.Type == scene.TypeHelipad {
				r.drawers.Helipad(dc, obj, d3)
			} else {
				r.drawers.Runway(dc, obj, d3)
			}
		} else {
			r.pushGround(obj)
			if obj.Type == scene.TypeHelipad {
				r.drawers.HelipadMap(dc, obj, dc.IconLen)
			} else {
				r.drawers.RunwayMap(dc, obj, dc.IconLen)
			}
		}
		r.dev.PopMatrix()
		r.postDrawReset()

	case scene.TypePremodeled:
		d, ok := visibility.InRange(obj, cam)
		if !ok {
			return
		}
		r.dev.LoadName(uint32(index))
		r.pushModel(obj)
		r.drawers.Premodeled(dc, obj, visibility.Distance3D(d, obj, cam), mode.probing())
		r.dev.PopMatrix()
		r.postDrawReset()
	}
}

// pushGround pushes the map transform: the object flattened onto the
// ground plane with its attitude kept.
func (r *Renderer) pushGround(obj *scene.Object) {
	r.dev.PushMatrix()
	r.dev.MultMatrix(math.GroundMatrix(obj.Pos).
		Mul4(math.HeadingRotation(obj.Dir.Heading)).
		Mul4(math.AttitudeRotation(obj.Dir.Pitch, obj.Dir.Bank)))
}

// drawMapAircraft draws an aircraft icon. Aircraft are never range culled
// on the map and their engines are always muted.
func (r *Renderer) drawMapAircraft(dc *DrawContext, mode mapMode, index int, obj *scene.Object) {
	a := obj.Aircraft
	if a == nil {
		return
	}
	r.dev.LoadName(uint32(index))
	if mode.probing() {
		return
	}

	player := index == dc.Scene.PlayerIndex
	if player {
		r.recordPlayer(dc, obj, a)
	}
	r.audio.MuteEngine(obj)

	if player && len(a.Intercepts) > 0 {
		r.drawIntercepts(obj, a)
	}

	l := dc.IconLen
	r.dev.PushMatrix()
	r.dev.MultMatrix(math.GroundMatrix(obj.Pos).Mul4(math.HeadingRotation(obj.Dir.Heading)))
	if player {
		r.dev.Color(playerIconColor)
	} else {
		r.dev.Color(otherIconColor)
	}
	r.dev.DrawLines([]mgl32.Vec3{
		{0, 0, 0}, {0, 0, -l},
		{-0.5 * l, 0, 0}, {0.5 * l, 0, 0},
	})
	r.dev.PopMatrix()
	r.postDrawReset()
}

// drawIntercepts draws the player's course: the remaining legs after the
// current one, then the current leg from the aircraft to its intercept.
func (r *Renderer) drawIntercepts(obj *scene.Object, a *scene.Aircraft) {
	cur := a.CurrentIntercept
	n := len(a.Intercepts)
	if cur < 0 || cur >= n {
		return
	}

	if cur+1 < n {
		var legs []mgl32.Vec3
		for i := cur; i < n-1; i++ {
			legs = append(legs, groundPoint(a.Intercepts[i]), groundPoint(a.Intercepts[i+1]))
		}
		r.dev.Color(laterLegColor)
		r.dev.DrawLines(legs)
	}

	r.dev.Color(currentLegColor)
	r.dev.DrawLines([]mgl32.Vec3{groundPoint(obj.Pos), groundPoint(a.Intercepts[cur])})
}

// groundPoint projects a world position onto the map ground plane.
func groundPoint(p math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{p.X, 0, -p.Y}
}
