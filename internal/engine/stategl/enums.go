package stategl

// Capability is a boolean device capability tracked by the cache.
type Capability int

const (
	AlphaTest Capability = iota
	Blend
	ColorMaterial
	CullFace
	DepthTest
	Dither
	Fog
	Lighting
	Light0
	Light1
	Light2
	Light3
	Light4
	Light5
	Light6
	Light7
	LineSmooth
	PointSmooth
	PolygonOffsetFill
	PolygonOffsetLine
	PolygonOffsetPoint
	ScissorTest
	StencilTest
	Texture1D
	Texture2D
	Texture3D

	capabilityCount
)

var capabilityNames = [capabilityCount]string{
	AlphaTest:          "alpha_test",
	Blend:              "blend",
	ColorMaterial:      "color_material",
	CullFace:           "cull_face",
	DepthTest:          "depth_test",
	Dither:             "dither",
	Fog:                "fog",
	Lighting:           "lighting",
	Light0:             "light0",
	Light1:             "light1",
	Light2:             "light2",
	Light3:             "light3",
	Light4:             "light4",
	Light5:             "light5",
	Light6:             "light6",
	Light7:             "light7",
	LineSmooth:         "line_smooth",
	PointSmooth:        "point_smooth",
	PolygonOffsetFill:  "polygon_offset_fill",
	PolygonOffsetLine:  "polygon_offset_line",
	PolygonOffsetPoint: "polygon_offset_point",
	ScissorTest:        "scissor_test",
	StencilTest:        "stencil_test",
	Texture1D:          "texture_1d",
	Texture2D:          "texture_2d",
	Texture3D:          "texture_3d",
}

// Valid reports whether c names a tracked capability.
func (c Capability) Valid() bool {
	return c >= 0 && c < capabilityCount
}

func (c Capability) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return capabilityNames[c]
}

// LightCapability returns the capability for fixed-function light i.
func LightCapability(i int) Capability {
	if i < 0 || i > 7 {
		return -1
	}
	return Light0 + Capability(i)
}

// CompareFunc is a depth, alpha or stencil comparison.
type CompareFunc int

const (
	Never CompareFunc = iota
	Less
	Equal
	LessEqual
	Greater
	NotEqual
	GreaterEqual
	Always
)

// BlendFactor is a source or destination blend factor.
type BlendFactor int

const (
	Zero BlendFactor = iota
	One
	SrcColor
	OneMinusSrcColor
	DstColor
	OneMinusDstColor
	SrcAlpha
	OneMinusSrcAlpha
	DstAlpha
	OneMinusDstAlpha
)

// Face selects front, back or both polygon faces.
type Face int

const (
	Front Face = iota
	Back
	FrontAndBack
)

// MaterialMode is the material property tracked by color material.
type MaterialMode int

const (
	Ambient MaterialMode = iota
	Diffuse
	Specular
	Emission
	AmbientAndDiffuse
)

// Winding is the front face vertex order.
type Winding int

const (
	CCW Winding = iota
	CW
)

// Shading is the shade model.
type Shading int

const (
	Smooth Shading = iota
	Flat
)

// StencilAction is a stencil buffer operation.
type StencilAction int

const (
	Keep StencilAction = iota
	ZeroStencil
	Replace
	Incr
	Decr
	Invert
)

// TexEnvMode is the texture environment mode.
type TexEnvMode int

const (
	Modulate TexEnvMode = iota
	Decal
	BlendTexture
	ReplaceTexture
)
