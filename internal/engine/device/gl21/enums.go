package gl21

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/sar2/sar2/internal/engine/stategl"
)

var capabilities = [...]uint32{
	stategl.AlphaTest:          gl.ALPHA_TEST,
	stategl.Blend:              gl.BLEND,
	stategl.ColorMaterial:      gl.COLOR_MATERIAL,
	stategl.CullFace:           gl.CULL_FACE,
	stategl.DepthTest:          gl.DEPTH_TEST,
	stategl.Dither:             gl.DITHER,
	stategl.Fog:                gl.FOG,
	stategl.Lighting:           gl.LIGHTING,
	stategl.Light0:             gl.LIGHT0,
	stategl.Light1:             gl.LIGHT1,
	stategl.Light2:             gl.LIGHT2,
	stategl.Light3:             gl.LIGHT3,
	stategl.Light4:             gl.LIGHT4,
	stategl.Light5:             gl.LIGHT5,
	stategl.Light6:             gl.LIGHT6,
	stategl.Light7:             gl.LIGHT7,
	stategl.LineSmooth:         gl.LINE_SMOOTH,
	stategl.PointSmooth:        gl.POINT_SMOOTH,
	stategl.PolygonOffsetFill:  gl.POLYGON_OFFSET_FILL,
	stategl.PolygonOffsetLine:  gl.POLYGON_OFFSET_LINE,
	stategl.PolygonOffsetPoint: gl.POLYGON_OFFSET_POINT,
	stategl.ScissorTest:        gl.SCISSOR_TEST,
	stategl.StencilTest:        gl.STENCIL_TEST,
	stategl.Texture1D:          gl.TEXTURE_1D,
	stategl.Texture2D:          gl.TEXTURE_2D,
	stategl.Texture3D:          gl.TEXTURE_3D,
}

// capability is only called by the cache with validated values.
func capability(c stategl.Capability) uint32 {
	return capabilities[c]
}

func compareFunc(fn stategl.CompareFunc) uint32 {
	switch fn {
	case stategl.Never:
		return gl.NEVER
	case stategl.Less:
		return gl.LESS
	case stategl.Equal:
		return gl.EQUAL
	case stategl.LessEqual:
		return gl.LEQUAL
	case stategl.Greater:
		return gl.GREATER
	case stategl.NotEqual:
		return gl.NOTEQUAL
	case stategl.GreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

func blendFactor(f stategl.BlendFactor) uint32 {
	switch f {
	case stategl.Zero:
		return gl.ZERO
	case stategl.SrcColor:
		return gl.SRC_COLOR
	case stategl.OneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case stategl.DstColor:
		return gl.DST_COLOR
	case stategl.OneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case stategl.SrcAlpha:
		return gl.SRC_ALPHA
	case stategl.OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case stategl.DstAlpha:
		return gl.DST_ALPHA
	case stategl.OneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		return gl.ONE
	}
}

func face(f stategl.Face) uint32 {
	switch f {
	case stategl.Front:
		return gl.FRONT
	case stategl.Back:
		return gl.BACK
	default:
		return gl.FRONT_AND_BACK
	}
}

func materialMode(m stategl.MaterialMode) uint32 {
	switch m {
	case stategl.Ambient:
		return gl.AMBIENT
	case stategl.Diffuse:
		return gl.DIFFUSE
	case stategl.Specular:
		return gl.SPECULAR
	case stategl.Emission:
		return gl.EMISSION
	default:
		return gl.AMBIENT_AND_DIFFUSE
	}
}

func stencilAction(a stategl.StencilAction) uint32 {
	switch a {
	case stategl.ZeroStencil:
		return gl.ZERO
	case stategl.Replace:
		return gl.REPLACE
	case stategl.Incr:
		return gl.INCR
	case stategl.Decr:
		return gl.DECR
	case stategl.Invert:
		return gl.INVERT
	default:
		return gl.KEEP
	}
}

func texEnvMode(m stategl.TexEnvMode) uint32 {
	switch m {
	case stategl.Decal:
		return gl.DECAL
	case stategl.BlendTexture:
		return gl.BLEND
	case stategl.ReplaceTexture:
		return gl.REPLACE
	default:
		return gl.MODULATE
	}
}
