// Package gl21 implements device.Device on an OpenGL 2.1 compatibility
// context using the fixed-function pipeline.
package gl21

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/stategl"
	"github.com/sar2/sar2/internal/logger"
)

// Device issues fixed-function calls on the current GL context.
type Device struct {
	selectBuf []uint32
}

var _ device.Device = (*Device)(nil)

// New loads the GL entry points. It must be called after the context is
// current on the calling thread.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
	)

	return &Device{}, nil
}

func (d *Device) Enable(c stategl.Capability)  { gl.Enable(capability(c)) }
func (d *Device) Disable(c stategl.Capability) { gl.Disable(capability(c)) }

func (d *Device) AlphaFunc(fn stategl.CompareFunc, ref float32) {
	gl.AlphaFunc(compareFunc(fn), ref)
}

func (d *Device) BlendFunc(src, dst stategl.BlendFactor) {
	gl.BlendFunc(blendFactor(src), blendFactor(dst))
}

func (d *Device) ColorMaterial(f stategl.Face, m stategl.MaterialMode) {
	gl.ColorMaterial(face(f), materialMode(m))
}

func (d *Device) DepthFunc(fn stategl.CompareFunc) { gl.DepthFunc(compareFunc(fn)) }
func (d *Device) DepthMask(write bool)             { gl.DepthMask(write) }

func (d *Device) FrontFace(w stategl.Winding) {
	if w == stategl.CW {
		gl.FrontFace(gl.CW)
		return
	}
	gl.FrontFace(gl.CCW)
}

func (d *Device) LineWidth(width float32) { gl.LineWidth(width) }
func (d *Device) PointSize(size float32)  { gl.PointSize(size) }

func (d *Device) PolygonOffset(factor, units float32) { gl.PolygonOffset(factor, units) }

func (d *Device) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (d *Device) ShadeModel(s stategl.Shading) {
	if s == stategl.Flat {
		gl.ShadeModel(gl.FLAT)
		return
	}
	gl.ShadeModel(gl.SMOOTH)
}

func (d *Device) StencilFunc(fn stategl.CompareFunc, ref int32, mask uint32) {
	gl.StencilFunc(compareFunc(fn), ref, mask)
}

func (d *Device) StencilOp(fail, zfail, zpass stategl.StencilAction) {
	gl.StencilOp(stencilAction(fail), stencilAction(zfail), stencilAction(zpass))
}

func (d *Device) TexEnv(mode stategl.TexEnvMode) {
	gl.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(texEnvMode(mode)))
}

func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (d *Device) MatrixMode(m device.MatrixMode) {
	if m == device.Projection {
		gl.MatrixMode(gl.PROJECTION)
		return
	}
	gl.MatrixMode(gl.MODELVIEW)
}

func (d *Device) LoadIdentity() { gl.LoadIdentity() }

func (d *Device) LoadMatrix(m mgl32.Mat4) { gl.LoadMatrixf(&m[0]) }
func (d *Device) MultMatrix(m mgl32.Mat4) { gl.MultMatrixf(&m[0]) }

func (d *Device) PushMatrix() { gl.PushMatrix() }
func (d *Device) PopMatrix()  { gl.PopMatrix() }

func (d *Device) ClearColor(c [4]float32) { gl.ClearColor(c[0], c[1], c[2], c[3]) }
func (d *Device) ClearStencil(s int32)    { gl.ClearStencil(s) }

func (d *Device) Clear(mask device.ClearMask) {
	var bits uint32
	if mask&device.ColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&device.DepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if mask&device.StencilBuffer != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	if bits != 0 {
		gl.Clear(bits)
	}
}

func (d *Device) SetFog(f device.Fog) {
	switch f.Mode {
	case device.FogExp:
		gl.Fogi(gl.FOG_MODE, gl.EXP)
	case device.FogExp2:
		gl.Fogi(gl.FOG_MODE, gl.EXP2)
	default:
		gl.Fogi(gl.FOG_MODE, gl.LINEAR)
	}
	gl.Fogf(gl.FOG_DENSITY, f.Density)
	gl.Fogf(gl.FOG_START, f.Start)
	gl.Fogf(gl.FOG_END, f.End)
	gl.Fogfv(gl.FOG_COLOR, &f.Color[0])
}

func (d *Device) LightModelAmbient(c [4]float32) {
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &c[0])
}

func (d *Device) SetLight(index int, l device.Light) {
	light := uint32(gl.LIGHT0 + index)
	gl.Lightfv(light, gl.POSITION, &l.Position[0])
	gl.Lightfv(light, gl.AMBIENT, &l.Ambient[0])
	gl.Lightfv(light, gl.DIFFUSE, &l.Diffuse[0])
	gl.Lightfv(light, gl.SPECULAR, &l.Specular[0])
	gl.Lightf(light, gl.CONSTANT_ATTENUATION, l.ConstantAttenuation)
	gl.Lightf(light, gl.LINEAR_ATTENUATION, l.LinearAttenuation)
	gl.Lightf(light, gl.QUADRATIC_ATTENUATION, l.QuadraticAttenuation)
}

func (d *Device) SetMaterial(f stategl.Face, m device.Material) {
	glFace := face(f)
	gl.Materialfv(glFace, gl.AMBIENT, &m.Ambient[0])
	gl.Materialfv(glFace, gl.DIFFUSE, &m.Diffuse[0])
	gl.Materialfv(glFace, gl.SPECULAR, &m.Specular[0])
	gl.Materialfv(glFace, gl.EMISSION, &m.Emission[0])
	gl.Materialf(glFace, gl.SHININESS, m.Shininess)
}

func (d *Device) Color(c [4]float32) { gl.Color4f(c[0], c[1], c[2], c[3]) }

func (d *Device) DrawPoints(points []mgl32.Vec3) { immediate(gl.POINTS, points) }
func (d *Device) DrawLines(points []mgl32.Vec3)  { immediate(gl.LINES, points) }

func immediate(mode uint32, points []mgl32.Vec3) {
	if len(points) == 0 {
		return
	}
	gl.Begin(mode)
	for _, p := range points {
		gl.Vertex3f(p[0], p[1], p[2])
	}
	gl.End()
}

func (d *Device) BeginSelect(capacity int) {
	if cap(d.selectBuf) < capacity {
		d.selectBuf = make([]uint32, capacity)
	}
	d.selectBuf = d.selectBuf[:capacity]
	gl.SelectBuffer(int32(capacity), &d.selectBuf[0])
	gl.RenderMode(gl.SELECT)
}

func (d *Device) InitNames()           { gl.InitNames() }
func (d *Device) PushName(name uint32) { gl.PushName(name) }
func (d *Device) LoadName(name uint32) { gl.LoadName(name) }

func (d *Device) EndSelect() ([]uint32, int) {
	hits := gl.RenderMode(gl.RENDER)
	return d.selectBuf, int(hits)
}

func (d *Device) ReadStencil(x, y, width, height int32) []uint8 {
	return readBack(x, y, width, height, gl.STENCIL_INDEX, 1)
}

func (d *Device) ReadPixels(x, y, width, height int32) []uint8 {
	gl.ReadBuffer(gl.FRONT)
	defer gl.ReadBuffer(gl.BACK)
	return readBack(x, y, width, height, gl.RGBA, 4)
}

// readBack reads a rectangle of the read buffer into a slice sized for the
// padded rows GL writes, then packs the rows tightly.
func readBack(x, y, width, height int32, format uint32, bytesPerPixel int) []uint8 {
	w, h := int(width), int(height)
	size := device.ReadBufferSize(w, h, bytesPerPixel, device.PackAlignment)
	if size == 0 {
		return nil
	}
	buf := make([]uint8, size)
	gl.PixelStorei(gl.PACK_ALIGNMENT, device.PackAlignment)
	gl.ReadPixels(x, y, width, height, format, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	return device.CompactRows(buf, w, h, bytesPerPixel, device.PackAlignment)
}

func (d *Device) Error() uint32 { return gl.GetError() }
