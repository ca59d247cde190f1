// Package device defines the fixed-function graphics device the render
// pipeline draws through.
//
// State toggles and parameters come from stategl.Backend and must only be
// issued through a stategl.State. The remaining calls (matrix stack,
// clears, fog, lights, selection and read-back) are not cached.
package device

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/engine/stategl"
)

// MatrixMode selects the matrix stack affected by matrix calls.
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
)

// ClearMask selects buffers to clear.
type ClearMask uint8

const (
	ColorBuffer ClearMask = 1 << iota
	DepthBuffer
	StencilBuffer
)

// FogMode is the fog falloff function.
type FogMode int

const (
	FogLinear FogMode = iota
	FogExp
	FogExp2
)

// Fog holds the fog parameters set once per frame.
type Fog struct {
	Mode    FogMode
	Density float32
	Start   float32
	End     float32
	Color   [4]float32
}

// Light holds the parameters of one fixed-function light.
type Light struct {
	// Position is in eye space after the modelview at the time of the
	// call; W = 0 makes the light directional.
	Position [4]float32
	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32

	ConstantAttenuation  float32
	LinearAttenuation    float32
	QuadraticAttenuation float32
}

// Material holds fixed-function material properties.
type Material struct {
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Emission  [4]float32
	Shininess float32
}

// Device is a fixed-function graphics context.
type Device interface {
	stategl.Backend

	Viewport(x, y, width, height int32)

	MatrixMode(m MatrixMode)
	LoadIdentity()
	LoadMatrix(m mgl32.Mat4)
	MultMatrix(m mgl32.Mat4)
	PushMatrix()
	PopMatrix()

	ClearColor(c [4]float32)
	ClearStencil(s int32)
	Clear(mask ClearMask)

	SetFog(f Fog)
	LightModelAmbient(c [4]float32)
	SetLight(index int, l Light)
	SetMaterial(face stategl.Face, m Material)

	Color(c [4]float32)
	DrawPoints(points []mgl32.Vec3)
	// DrawLines draws independent segments from consecutive point pairs.
	DrawLines(points []mgl32.Vec3)

	// BeginSelect switches to selection mode with a hit buffer of the
	// given capacity in words.
	BeginSelect(capacity int)
	InitNames()
	PushName(name uint32)
	LoadName(name uint32)
	// EndSelect returns to render mode and yields the hit buffer and hit
	// count. A count of -1 means the buffer overflowed.
	EndSelect() (buffer []uint32, hits int)

	// ReadStencil blocks until rendering completes and returns the stencil
	// values of the rectangle, one byte per pixel.
	ReadStencil(x, y, width, height int32) []uint8

	// ReadPixels returns the RGBA pixels of the rectangle of the last
	// presented frame, bottom row first.
	ReadPixels(x, y, width, height int32) []uint8

	// Error returns and clears the device error flag, 0 for none.
	Error() uint32
}
