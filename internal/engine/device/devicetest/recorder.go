// Package devicetest provides a recording device.Device for tests.
package devicetest

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/stategl"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder records every call and replays scripted read-back results.
type Recorder struct {
	Calls []Call

	// SelectBuffer and SelectHits are returned by EndSelect.
	SelectBuffer []uint32
	SelectHits   int

	// Stencil is returned by ReadStencil.
	Stencil []uint8
	// Pixels is returned by ReadPixels.
	Pixels []uint8

	// Errors are returned by successive Error calls, then 0.
	Errors []uint32

	depth    int
	maxDepth int
	mode     device.MatrixMode
}

var _ device.Device = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Reset forgets recorded calls but keeps scripted results.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.depth = 0
	r.maxDepth = 0
}

// Count returns the number of calls with the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns every call with the given name in order.
func (r *Recorder) Find(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether a call matching the formatted form, such as
// "Enable(blend)", was recorded.
func (r *Recorder) Has(formatted string) bool {
	return r.Index(formatted) >= 0
}

// Index returns the position of the first call matching the formatted
// form, or -1.
func (r *Recorder) Index(formatted string) int {
	for i, c := range r.Calls {
		if c.String() == formatted {
			return i
		}
	}
	return -1
}

// Depth returns the current modelview push depth.
func (r *Recorder) Depth() int {
	return r.depth
}

// MaxDepth returns the deepest modelview push depth seen.
func (r *Recorder) MaxDepth() int {
	return r.maxDepth
}

func (r *Recorder) Enable(c stategl.Capability)  { r.record("Enable", c) }
func (r *Recorder) Disable(c stategl.Capability) { r.record("Disable", c) }

func (r *Recorder) AlphaFunc(fn stategl.CompareFunc, ref float32) {
	r.record("AlphaFunc", fn, ref)
}

func (r *Recorder) BlendFunc(src, dst stategl.BlendFactor) { r.record("BlendFunc", src, dst) }

func (r *Recorder) ColorMaterial(face stategl.Face, mode stategl.MaterialMode) {
	r.record("ColorMaterial", face, mode)
}

func (r *Recorder) DepthFunc(fn stategl.CompareFunc) { r.record("DepthFunc", fn) }
func (r *Recorder) DepthMask(write bool)             { r.record("DepthMask", write) }
func (r *Recorder) FrontFace(w stategl.Winding)      { r.record("FrontFace", w) }
func (r *Recorder) LineWidth(width float32)          { r.record("LineWidth", width) }
func (r *Recorder) PointSize(size float32)           { r.record("PointSize", size) }
func (r *Recorder) PolygonOffset(factor, units float32) {
	r.record("PolygonOffset", factor, units)
}

func (r *Recorder) Scissor(x, y, width, height int32) { r.record("Scissor", x, y, width, height) }
func (r *Recorder) ShadeModel(s stategl.Shading)      { r.record("ShadeModel", s) }

func (r *Recorder) StencilFunc(fn stategl.CompareFunc, ref int32, mask uint32) {
	r.record("StencilFunc", fn, ref, mask)
}

func (r *Recorder) StencilOp(fail, zfail, zpass stategl.StencilAction) {
	r.record("StencilOp", fail, zfail, zpass)
}

func (r *Recorder) TexEnv(mode stategl.TexEnvMode) { r.record("TexEnv", mode) }

func (r *Recorder) Viewport(x, y, width, height int32) { r.record("Viewport", x, y, width, height) }

func (r *Recorder) MatrixMode(m device.MatrixMode) {
	r.mode = m
	r.record("MatrixMode", m)
}

func (r *Recorder) LoadIdentity()           { r.record("LoadIdentity") }
func (r *Recorder) LoadMatrix(m mgl32.Mat4) { r.record("LoadMatrix", m) }
func (r *Recorder) MultMatrix(m mgl32.Mat4) { r.record("MultMatrix", m) }

func (r *Recorder) PushMatrix() {
	if r.mode == device.ModelView {
		r.depth++
		r.maxDepth = max(r.maxDepth, r.depth)
	}
	r.record("PushMatrix")
}

func (r *Recorder) PopMatrix() {
	if r.mode == device.ModelView {
		r.depth--
	}
	r.record("PopMatrix")
}

func (r *Recorder) ClearColor(c [4]float32) { r.record("ClearColor", c) }
func (r *Recorder) ClearStencil(s int32)    { r.record("ClearStencil", s) }
func (r *Recorder) Clear(mask device.ClearMask) {
	r.record("Clear", mask)
}

func (r *Recorder) SetFog(f device.Fog)                { r.record("SetFog", f) }
func (r *Recorder) LightModelAmbient(c [4]float32)     { r.record("LightModelAmbient", c) }
func (r *Recorder) SetLight(index int, l device.Light) { r.record("SetLight", index, l) }

func (r *Recorder) SetMaterial(face stategl.Face, m device.Material) {
	r.record("SetMaterial", face, m)
}

func (r *Recorder) Color(c [4]float32)             { r.record("Color", c) }
func (r *Recorder) DrawPoints(points []mgl32.Vec3) { r.record("DrawPoints", points) }
func (r *Recorder) DrawLines(points []mgl32.Vec3)  { r.record("DrawLines", points) }

func (r *Recorder) BeginSelect(capacity int) { r.record("BeginSelect", capacity) }
func (r *Recorder) InitNames()               { r.record("InitNames") }
func (r *Recorder) PushName(name uint32)     { r.record("PushName", name) }
func (r *Recorder) LoadName(name uint32)     { r.record("LoadName", name) }

func (r *Recorder) EndSelect() ([]uint32, int) {
	r.record("EndSelect")
	return r.SelectBuffer, r.SelectHits
}

func (r *Recorder) ReadStencil(x, y, width, height int32) []uint8 {
	r.record("ReadStencil", x, y, width, height)
	return r.Stencil
}

func (r *Recorder) ReadPixels(x, y, width, height int32) []uint8 {
	r.record("ReadPixels", x, y, width, height)
	return r.Pixels
}

func (r *Recorder) Error() uint32 {
	r.record("Error")
	if len(r.Errors) == 0 {
		return 0
	}
	e := r.Errors[0]
	r.Errors = r.Errors[1:]
	return e
}
