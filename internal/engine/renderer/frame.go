package renderer

import (
	"github.com/sar2/sar2/internal/clock"
	"github.com/sar2/sar2/internal/engine/atmosphere"
	"github.com/sar2/sar2/internal/engine/camera"
	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/stategl"
	"github.com/sar2/sar2/internal/scene"
)

// mainNearClip is the near clip of the main view in meters.
const mainNearClip = 0.8

// overlayWhite is the FLIR color of the outside attitude overlay.
var overlayWhite = [4]float32{1, 1, 1, 1}

// DrawScene draws the main 3-D view from the scene camera and presents
// it. With the map camera selected it draws the map view instead. A frame
// with no scene, an empty viewport or no field of view draws nothing.
func (r *Renderer) DrawScene(s *scene.Scene, opts Options, clk clock.Clock) {
	if s == nil {
		return
	}
	width, height := r.display.Size()
	if width <= 0 || height <= 0 {
		return
	}
	if s.Camera.Ref == scene.CameraMap {
		r.drawMap(s, opts, clk, mapNormal, -1)
		return
	}
	if s.Camera.FOV <= 0 {
		return
	}

	dc := newContext(s, opts, clk, width, height)

	r.dev.Viewport(0, 0, int32(width), int32(height))
	r.setPerspective(dc.FOV, dc.Aspect, mainNearClip, dc.FarClip)

	dc.Camera = camera.Update(s, camera.ForRef(s.Camera.Ref))
	r.dev.LoadMatrix(dc.Camera.View)
	if opts.GetCamDir {
		dc.CameraDir = camera.DirFromView(dc.Camera.View)
	}

	r.setAtmosphere(dc)
	r.drawBackground(dc)
	r.setLighting(dc)

	for i, obj := range s.Objects {
		if obj == nil {
			continue
		}
		r.objectPrologue(obj)
		r.drawObject(dc, i, obj)
	}

	r.st.Disable(stategl.Fog)
	if p := s.Player(); p != nil {
		r.drawers.SpotLightCast(dc, p)
	}
	if dc.Player.Cockpit != nil {
		r.drawers.Cockpit(dc, dc.Player.Cockpit)
	}

	r.beginOverlay(dc)
	if p := s.Player(); p != nil {
		if dc.CameraRef == scene.CameraCockpit {
			r.drawers.HUD(dc, p)
		} else {
			if dc.FLIR {
				r.dev.Color(overlayWhite)
			}
			r.drawers.OutsideAttitude(dc, p)
		}
	}
	r.drawers.Overlay(dc)

	r.display.SwapBuffers()
	r.pollErrors(opts)
}

// setAtmosphere computes the frame atmosphere, sets fog and clears the
// frame. The color buffer is left alone when the background repaints it.
func (r *Renderer) setAtmosphere(dc *DrawContext) {
	in := atmosphere.InputFromScene(dc.Scene, dc.Camera.Pos.Z, dc.FarClip)
	in.FLIR = dc.FLIR
	in.Atmosphere = dc.Options.Atmosphere
	in.TexturedClouds = dc.Options.TexturedClouds
	f := atmosphere.Compute(in)
	dc.Atmosphere = f
	dc.LightColor = f.Light

	if f.FogEnabled {
		r.st.Enable(stategl.Fog)
		r.dev.SetFog(f.Fog)
	} else {
		r.st.Disable(stategl.Fog)
	}

	mask := device.DepthBuffer
	if f.NeedClearColor {
		mask |= device.ColorBuffer
		r.dev.ClearColor(f.ClearColor)
	}
	r.dev.Clear(mask)
}

// drawBackground draws the ground base, horizon, cloud layers, celestial
// objects and cloud billboards.
func (r *Renderer) drawBackground(dc *DrawContext) {
	camZ := dc.Camera.Pos.Z

	r.st.Disable(stategl.Lighting)
	r.st.Disable(stategl.Light0)
	r.depthTest(false)
	r.textures(false, false)
	r.st.DepthMask(false)
	r.drawers.Foundations(dc)
	r.st.DepthMask(true)

	if dc.Options.TexturedClouds {
		if dc.Atmosphere.BelowCeiling {
			r.drawers.Horizon(dc)
		}
		r.textures(false, true)
		above, below := atmosphere.Layers(dc.Scene.CloudLayers(), camZ)
		if above != nil {
			r.drawers.CloudLayer(dc, above, true)
		}
		if below != nil {
			r.drawers.CloudLayer(dc, below, false)
		}
	} else if dc.HighestCloud != nil && camZ > dc.HighestCloud.Altitude {
		r.textures(false, true)
		r.drawers.CloudLayer(dc, dc.HighestCloud, false)
	}

	r.depthTest(false)
	if dc.Options.CelestialObjects {
		r.drawers.Celestial(dc)
	}

	r.depthTest(true)
	if dc.Options.TexturedClouds {
		r.drawers.CloudBillboards(dc)
	}
}

// setLighting sets the material, ambient and primary light for object
// drawing. Lighting is only on with celestial objects shown.
func (r *Renderer) setLighting(dc *DrawContext) {
	if dc.Options.CelestialObjects {
		r.st.Enable(stategl.Lighting)
		r.st.Enable(stategl.Light0)
	}

	r.st.Disable(stategl.ColorMaterial)
	r.dev.SetMaterial(stategl.Front, atmosphere.DefaultMaterial())
	r.st.ColorMaterial(stategl.Front, stategl.AmbientAndDiffuse)
	r.st.Enable(stategl.ColorMaterial)

	r.dev.LightModelAmbient(atmosphere.ModelAmbient(dc.FLIR))
	r.dev.SetLight(0, atmosphere.PrimaryLight(dc.Atmosphere, dc.Camera.Pos, dc.Scene.LightPos))

	r.texturedObjects(dc.Options.TexturedObjects)
}

// beginOverlay switches to the 2-D overlay projection with every 3-D
// state off.
func (r *Renderer) beginOverlay(dc *DrawContext) {
	r.setOrtho2D(dc.Width, dc.Height)
	r.depthTest(false)
	r.st.Disable(stategl.ColorMaterial)
	r.st.Disable(stategl.Lighting)
	r.st.Disable(stategl.Light0)
	r.textures(false, false)
	r.st.Disable(stategl.AlphaTest)
}
