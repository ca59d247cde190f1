package stategl

// Param is a parameter group tracked by the cache. Each group maps to one
// atomic device call.
type Param int

const (
	ParamAlphaFunc Param = iota
	ParamBlendFunc
	ParamColorMaterial
	ParamDepthFunc
	ParamDepthMask
	ParamFrontFace
	ParamLineWidth
	ParamPointSize
	ParamPolygonOffset
	ParamScissor
	ParamShadeModel
	ParamStencilFunc
	ParamStencilOp
	ParamTexEnv

	paramCount
)

// Valid reports whether p names a tracked parameter group.
func (p Param) Valid() bool {
	return p >= 0 && p < paramCount
}

// Values is the tuple of a parameter group. Unused trailing components
// stay zero. Every component is compared when deciding whether to emit.
type Values [4]float64

// TrackedCount is the number of device calls ResetAll emits.
const TrackedCount = int(capabilityCount) + int(paramCount)

// baseline holds the device defaults ResetAll restores. The scissor box
// default depends on the window; see State.SetWindowSize.
var baseline = [paramCount]Values{
	ParamAlphaFunc:     {float64(Always), 0},
	ParamBlendFunc:     {float64(One), float64(Zero)},
	ParamColorMaterial: {float64(FrontAndBack), float64(AmbientAndDiffuse)},
	ParamDepthFunc:     {float64(Less)},
	ParamDepthMask:     {1},
	ParamFrontFace:     {float64(CCW)},
	ParamLineWidth:     {1},
	ParamPointSize:     {1},
	ParamPolygonOffset: {0, 0},
	ParamScissor:       {0, 0, 0, 0},
	ParamShadeModel:    {float64(Smooth)},
	ParamStencilFunc:   {float64(Always), 0, 0xffffffff},
	ParamStencilOp:     {float64(Keep), float64(Keep), float64(Keep)},
	ParamTexEnv:        {float64(Modulate)},
}

var emitters = [paramCount]func(Backend, Values){
	ParamAlphaFunc: func(b Backend, v Values) {
		b.AlphaFunc(CompareFunc(v[0]), float32(v[1]))
	},
	ParamBlendFunc: func(b Backend, v Values) {
		b.BlendFunc(BlendFactor(v[0]), BlendFactor(v[1]))
	},
	ParamColorMaterial: func(b Backend, v Values) {
		b.ColorMaterial(Face(v[0]), MaterialMode(v[1]))
	},
	ParamDepthFunc: func(b Backend, v Values) {
		b.DepthFunc(CompareFunc(v[0]))
	},
	ParamDepthMask: func(b Backend, v Values) {
		b.DepthMask(v[0] != 0)
	},
	ParamFrontFace: func(b Backend, v Values) {
		b.FrontFace(Winding(v[0]))
	},
	ParamLineWidth: func(b Backend, v Values) {
		b.LineWidth(float32(v[0]))
	},
	ParamPointSize: func(b Backend, v Values) {
		b.PointSize(float32(v[0]))
	},
	ParamPolygonOffset: func(b Backend, v Values) {
		b.PolygonOffset(float32(v[0]), float32(v[1]))
	},
	ParamScissor: func(b Backend, v Values) {
		b.Scissor(int32(v[0]), int32(v[1]), int32(v[2]), int32(v[3]))
	},
	ParamShadeModel: func(b Backend, v Values) {
		b.ShadeModel(Shading(v[0]))
	},
	ParamStencilFunc: func(b Backend, v Values) {
		b.StencilFunc(CompareFunc(v[0]), int32(v[1]), uint32(v[2]))
	},
	ParamStencilOp: func(b Backend, v Values) {
		b.StencilOp(StencilAction(v[0]), StencilAction(v[1]), StencilAction(v[2]))
	},
	ParamTexEnv: func(b Backend, v Values) {
		b.TexEnv(TexEnvMode(v[0]))
	},
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
