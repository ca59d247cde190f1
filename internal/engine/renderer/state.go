package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/lighting"
	"github.com/sar2/sar2/internal/engine/stategl"
	"github.com/sar2/sar2/internal/engine/visibility"
	"github.com/sar2/sar2/internal/scene"
)

// alphaTestRef is the alpha test threshold for textured objects.
const alphaTestRef = 0.5

func (r *Renderer) setPerspective(fov, aspect, near, far float32) {
	r.dev.MatrixMode(device.Projection)
	r.dev.LoadMatrix(mgl32.Perspective(fov, aspect, near, far))
	r.dev.MatrixMode(device.ModelView)
	r.dev.LoadIdentity()
}

// setOrtho2D sets a pixel projection with the origin at the bottom left.
func (r *Renderer) setOrtho2D(width, height int) {
	r.dev.MatrixMode(device.Projection)
	r.dev.LoadMatrix(mgl32.Ortho2D(0, float32(width), 0, float32(height)))
	r.dev.MatrixMode(device.ModelView)
	r.dev.LoadIdentity()
}

func (r *Renderer) depthTest(on bool) {
	if on {
		r.st.Enable(stategl.DepthTest)
		r.st.DepthFunc(stategl.LessEqual)
		return
	}
	r.st.Disable(stategl.DepthTest)
	r.st.DepthFunc(stategl.Always)
}

func (r *Renderer) textures(tex1D, tex2D bool) {
	r.st.SetBoolean(stategl.Texture1D, tex1D, false)
	r.st.SetBoolean(stategl.Texture2D, tex2D, false)
	if tex2D {
		r.st.TexEnv(stategl.Modulate)
	}
}

// texturedObjects sets up alpha tested 2-D texturing for object models,
// or turns texturing off.
func (r *Renderer) texturedObjects(on bool) {
	if on {
		r.st.Enable(stategl.AlphaTest)
		r.st.AlphaFunc(stategl.Greater, alphaTestRef)
	}
	r.textures(false, on)
}

// objectPrologue applies the per-object depth and shading flags.
func (r *Renderer) objectPrologue(obj *scene.Object) {
	if obj.Flags.Has(scene.FlagNoDepthTest) {
		r.depthTest(false)
		r.st.DepthMask(false)
	} else {
		r.depthTest(true)
		r.st.DepthMask(true)
	}
	if obj.Flags.Has(scene.FlagShadeModelSmooth) {
		r.st.ShadeModel(stategl.Smooth)
	} else {
		r.st.ShadeModel(stategl.Flat)
	}
}

// polygonOffsetOn pulls an object's coplanar geometry toward the camera,
// or pushes it away with FlagPolygonOffsetReverse. Depth writes stay off
// unless FlagPolygonOffsetWriteDepth is set.
func (r *Renderer) polygonOffsetOn(obj *scene.Object, factor float32) {
	var units float32
	switch {
	case obj.Flags.Has(scene.FlagPolygonOffset):
		units = -1
	case obj.Flags.Has(scene.FlagPolygonOffsetReverse):
		factor, units = -factor, 1
	default:
		return
	}
	if !obj.Flags.Has(scene.FlagPolygonOffsetWriteDepth) {
		r.st.DepthMask(false)
	}
	r.st.Enable(stategl.PolygonOffsetFill)
	r.st.PolygonOffset(factor, units)
}

func (r *Renderer) polygonOffsetOff(obj *scene.Object) {
	if !obj.Flags.Has(scene.FlagPolygonOffset) && !obj.Flags.Has(scene.FlagPolygonOffsetReverse) {
		return
	}
	r.st.DepthMask(true)
	r.st.Disable(stategl.PolygonOffsetFill)
}

// postDrawReset restores the state object drawers are allowed to leave
// changed. Alpha test and blend are forced because display lists may
// toggle them behind the cache.
func (r *Renderer) postDrawReset() {
	r.st.SetBoolean(stategl.AlphaTest, true, true)
	r.st.SetBoolean(stategl.Blend, false, true)
	r.st.PointSize(1)
}

// flirColor is the temperature tint of IR models.
func flirColor(t float32) [4]float32 {
	l := clip((t - 0.5) * 2)
	h := clip(t * 2)
	return [4]float32{l, h, l, 1}
}

func clip(v float32) float32 {
	return min(max(v, 0), 1)
}

// drawVariants draws the selected time of day models. Unlit models are
// drawn with lighting off; IR models get the temperature tint.
func (r *Renderer) drawVariants(dc *DrawContext, obj *scene.Object) {
	r.variants = visibility.SelectVariants(r.variants[:0], obj, dc.Scene.TimeOfDay, dc.FLIR)
	for _, sel := range r.variants {
		if sel.Lit {
			sel.Model.Draw()
			continue
		}
		lit := r.st.Enabled(stategl.Lighting)
		r.st.Disable(stategl.Lighting)
		if sel.Variant == visibility.VariantIR {
			r.dev.Color(flirColor(obj.Temperature))
		}
		sel.Model.Draw()
		r.st.SetBoolean(stategl.Lighting, lit, false)
	}
}

func (r *Renderer) drawFarModel(dc *DrawContext, obj *scene.Object) {
	if visibility.FarModelVisible(obj, dc.Scene.TimeOfDay) {
		obj.Models.Far.Draw()
	}
}

func (r *Renderer) drawLights(dc *DrawContext, obj *scene.Object) {
	if len(obj.Lights) == 0 {
		return
	}
	r.lights.Clear()
	r.lights.AddLights(obj.Lights, dc.Clock, dc.FLIR)
	lighting.Draw(r.dev, r.st, r.lights)
}
