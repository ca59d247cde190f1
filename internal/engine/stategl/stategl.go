// Package stategl caches fixed-function device state so that redundant
// enable, disable and parameter calls never reach the driver.
//
// The cache only stays truthful if every state change goes through it.
// Nothing else may call the Backend state functions once a State is
// installed on a context.
package stategl

import (
	"go.uber.org/zap"

	"github.com/sar2/sar2/internal/logger"
)

// Backend receives the state calls that survive de-duplication.
type Backend interface {
	Enable(c Capability)
	Disable(c Capability)

	AlphaFunc(fn CompareFunc, ref float32)
	BlendFunc(src, dst BlendFactor)
	ColorMaterial(face Face, mode MaterialMode)
	DepthFunc(fn CompareFunc)
	DepthMask(write bool)
	FrontFace(w Winding)
	LineWidth(width float32)
	PointSize(size float32)
	PolygonOffset(factor, units float32)
	Scissor(x, y, width, height int32)
	ShadeModel(s Shading)
	StencilFunc(fn CompareFunc, ref int32, mask uint32)
	StencilOp(fail, zfail, zpass StencilAction)
	// TexEnv sets the TEXTURE_ENV_MODE of the TEXTURE_ENV target.
	TexEnv(mode TexEnvMode)
}

// State is the cache record for one graphics context.
type State struct {
	backend Backend
	log     *zap.Logger

	caps   [capabilityCount]bool
	params [paramCount]Values

	// window is the drawable size; the device's power-on scissor box
	// covers it.
	window [2]int32
}

// New returns a cache in front of backend. The cache content is unknown
// until ResetAll runs, which callers do once after context creation.
func New(backend Backend, log *zap.Logger) *State {
	if log == nil {
		log = logger.Named("stategl")
	}
	return &State{backend: backend, log: log}
}

// ResetAll forces every tracked capability off and every parameter group
// to its baseline, emitting every device call unconditionally.
func (s *State) ResetAll() {
	for c := Capability(0); c < capabilityCount; c++ {
		s.caps[c] = false
		s.backend.Disable(c)
	}
	for p := Param(0); p < paramCount; p++ {
		s.setParam(p, s.baseline(p), true)
	}
}

// SetWindowSize records the drawable size. ResetAll restores the scissor
// box to the full window, as the device sets it when the context is
// created. Until a size is known the box is empty.
func (s *State) SetWindowSize(width, height int32) {
	s.window = [2]int32{max(width, 0), max(height, 0)}
}

func (s *State) baseline(p Param) Values {
	if p == ParamScissor {
		return Values{0, 0, float64(s.window[0]), float64(s.window[1])}
	}
	return baseline[p]
}

// SetBoolean turns capability c on or off. The device is only called when
// the cached value differs or force is set.
func (s *State) SetBoolean(c Capability, on, force bool) {
	if !c.Valid() {
		s.log.Error("unrecognized capability", zap.Int("capability", int(c)), zap.Bool("enable", on))
		return
	}
	if s.caps[c] == on && !force {
		return
	}
	s.caps[c] = on
	if on {
		s.backend.Enable(c)
	} else {
		s.backend.Disable(c)
	}
}

// Enable turns capability c on.
func (s *State) Enable(c Capability) {
	s.SetBoolean(c, true, false)
}

// Disable turns capability c off.
func (s *State) Disable(c Capability) {
	s.SetBoolean(c, false, false)
}

// Enabled returns the cached value of capability c.
func (s *State) Enabled(c Capability) bool {
	if !c.Valid() {
		return false
	}
	return s.caps[c]
}

// SetParam sets parameter group p. The whole group is re-emitted when
// any component differs or force is set.
func (s *State) SetParam(p Param, v Values, force bool) {
	s.setParam(p, v, force)
}

// Param returns the cached values of parameter group p.
func (s *State) Param(p Param) Values {
	if !p.Valid() {
		return Values{}
	}
	return s.params[p]
}

func (s *State) setParam(p Param, v Values, force bool) {
	if !p.Valid() {
		s.log.Error("unrecognized parameter group", zap.Int("param", int(p)))
		return
	}
	if s.params[p] == v && !force {
		return
	}
	s.params[p] = v
	emitters[p](s.backend, v)
}

// AlphaFunc sets the alpha test function and reference.
func (s *State) AlphaFunc(fn CompareFunc, ref float32) {
	s.setParam(ParamAlphaFunc, Values{float64(fn), float64(ref)}, false)
}

// BlendFunc sets the source and destination blend factors.
func (s *State) BlendFunc(src, dst BlendFactor) {
	s.setParam(ParamBlendFunc, Values{float64(src), float64(dst)}, false)
}

// ColorMaterial selects which material property tracks the current color.
func (s *State) ColorMaterial(face Face, mode MaterialMode) {
	s.setParam(ParamColorMaterial, Values{float64(face), float64(mode)}, false)
}

// DepthFunc sets the depth comparison.
func (s *State) DepthFunc(fn CompareFunc) {
	s.setParam(ParamDepthFunc, Values{float64(fn)}, false)
}

// DepthMask enables or disables depth buffer writes.
func (s *State) DepthMask(write bool) {
	s.setParam(ParamDepthMask, Values{boolValue(write)}, false)
}

// FrontFace sets the front face winding.
func (s *State) FrontFace(w Winding) {
	s.setParam(ParamFrontFace, Values{float64(w)}, false)
}

// LineWidth sets the rasterized line width.
func (s *State) LineWidth(width float32) {
	s.setParam(ParamLineWidth, Values{float64(width)}, false)
}

// PointSize sets the rasterized point size.
func (s *State) PointSize(size float32) {
	s.setParam(ParamPointSize, Values{float64(size)}, false)
}

// PolygonOffset sets the polygon offset factor and units.
func (s *State) PolygonOffset(factor, units float32) {
	s.setParam(ParamPolygonOffset, Values{float64(factor), float64(units)}, false)
}

// Scissor sets the scissor rectangle.
func (s *State) Scissor(x, y, width, height int32) {
	s.setParam(ParamScissor, Values{float64(x), float64(y), float64(width), float64(height)}, false)
}

// ShadeModel selects flat or smooth shading.
func (s *State) ShadeModel(sh Shading) {
	s.setParam(ParamShadeModel, Values{float64(sh)}, false)
}

// StencilFunc sets the stencil test function, reference and mask.
func (s *State) StencilFunc(fn CompareFunc, ref int32, mask uint32) {
	s.setParam(ParamStencilFunc, Values{float64(fn), float64(ref), float64(mask)}, false)
}

// StencilOp sets the stencil fail, depth fail and pass actions.
func (s *State) StencilOp(fail, zfail, zpass StencilAction) {
	s.setParam(ParamStencilOp, Values{float64(fail), float64(zfail), float64(zpass)}, false)
}

// TexEnv sets the texture environment mode.
func (s *State) TexEnv(mode TexEnvMode) {
	s.setParam(ParamTexEnv, Values{float64(mode)}, false)
}
