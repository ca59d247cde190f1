package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/engine/device"
)

// WireModel is a line drawing replayed into the current transform. A
// model with a zero alpha color draws in the current color, which lets
// the renderer tint infra-red variants.
type WireModel struct {
	dev   device.Device
	color [4]float32
	lines []mgl32.Vec3
}

// Draw implements scene.VisualModel.
func (m *WireModel) Draw() {
	if m.color[3] > 0 {
		m.dev.Color(m.color)
	}
	m.dev.DrawLines(m.lines)
}

// Box returns the edges of a box w wide, l long and h high standing on
// the model origin, nose toward -Z.
func Box(dev device.Device, color [4]float32, w, l, h float32) *WireModel {
	x, z := w/2, l/2
	c := [8]mgl32.Vec3{
		{-x, 0, -z}, {x, 0, -z}, {x, 0, z}, {-x, 0, z},
		{-x, h, -z}, {x, h, -z}, {x, h, z}, {-x, h, z},
	}
	lines := make([]mgl32.Vec3, 0, 24)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		lines = append(lines,
			c[i], c[j],     // bottom
			c[i+4], c[j+4], // top
			c[i], c[i+4],   // side
		)
	}
	return &WireModel{dev: dev, color: color, lines: lines}
}

// rect returns the outline of a w by l rectangle on the ground plane
// centered on the origin.
func rect(w, l float32) []mgl32.Vec3 {
	x, z := w/2, l/2
	a, b, c, d := mgl32.Vec3{-x, 0, -z}, mgl32.Vec3{x, 0, -z}, mgl32.Vec3{x, 0, z}, mgl32.Vec3{-x, 0, z}
	return []mgl32.Vec3{a, b, b, c, c, d, d, a}
}

// grid returns ground lines every step meters over a square of the given
// half size around center, in render space.
func grid(center mgl32.Vec3, half, step float32) []mgl32.Vec3 {
	if step <= 0 || half <= 0 {
		return nil
	}
	cx := float32(int(center.X()/step)) * step
	cz := float32(int(center.Z()/step)) * step
	var lines []mgl32.Vec3
	for d := -half; d <= half; d += step {
		lines = append(lines,
			mgl32.Vec3{cx + d, 0, cz - half}, mgl32.Vec3{cx + d, 0, cz + half},
			mgl32.Vec3{cx - half, 0, cz + d}, mgl32.Vec3{cx + half, 0, cz + d},
		)
	}
	return lines
}
