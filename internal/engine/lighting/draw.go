package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/engine/device"
	"github.com/sar2/sar2/internal/engine/stategl"
)

// Draw renders buffered points with lighting and alpha test off and
// alpha blending on. Lighting and alpha test are restored afterwards if
// they were enabled; blend and point smoothing are left off.
func Draw(dev device.Device, st *stategl.State, b *PointBuffer) {
	if b.Len() == 0 {
		return
	}

	lighting := st.Enabled(stategl.Lighting)
	alphaTest := st.Enabled(stategl.AlphaTest)

	st.Disable(stategl.Lighting)
	st.Disable(stategl.AlphaTest)
	st.Enable(stategl.Blend)
	st.BlendFunc(stategl.SrcAlpha, stategl.OneMinusSrcAlpha)
	st.Enable(stategl.PointSmooth)

	for _, p := range b.Points {
		st.PointSize(p.Size)
		dev.Color(p.Color)
		dev.DrawPoints([]mgl32.Vec3{p.Position})
	}

	st.Disable(stategl.PointSmooth)
	st.PointSize(1)
	st.Disable(stategl.Blend)
	if alphaTest {
		st.Enable(stategl.AlphaTest)
	}
	if lighting {
		st.Enable(stategl.Lighting)
	}
}
