// Package lighting draws the point lights attached to objects: navigation
// lights, beacons and strobes rendered as smoothed GL points.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sar2/sar2/internal/clock"
	"github.com/sar2/sar2/internal/scene"
	"github.com/sar2/sar2/pkg/math"
)

// Point is one GL point ready for drawing.
type Point struct {
	// Position in render space, relative to the current modelview.
	Position mgl32.Vec3
	Color    [4]float32
	Size     float32
}

// PointBuffer collects the points of one light list. It is reused across
// objects to avoid allocating per frame.
type PointBuffer struct {
	Points []Point
}

// NewPointBuffer creates an empty buffer.
func NewPointBuffer() *PointBuffer {
	return &PointBuffer{Points: make([]Point, 0, 16)}
}

// Clear removes all points from the buffer.
func (b *PointBuffer) Clear() {
	b.Points = b.Points[:0]
}

// Len returns the number of buffered points.
func (b *PointBuffer) Len() int {
	return len(b.Points)
}

// AddLights appends the visible points for lights at the clock's time. A
// strobe past its midpoint gets an extra core point at full alpha drawn
// before the halo.
func (b *PointBuffer) AddLights(lights []scene.Light, c clock.Clock, flir bool) {
	for i := range lights {
		l := &lights[i]
		if !Visible(l) {
			continue
		}

		coeff := Intensity(l, c.Millitime)
		pos := math.ToRender(l.Pos)
		color := l.Color.Clamp()
		if flir {
			g := color.Gray()
			color = scene.Color{R: g, G: g, B: g}
		}

		if l.Flags.Has(scene.LightStrobe) && coeff >= 0.5 {
			b.Points = append(b.Points, Point{
				Position: pos,
				Color:    color.RGBA(l.Alpha),
				Size:     max(l.Radius, 1),
			})
		}
		b.Points = append(b.Points, Point{
			Position: pos,
			Color:    color.RGBA(l.Alpha * coeff),
			Size:     max(l.Radius*2*coeff, 1),
		})
	}
}

// Visible reports whether a light is drawn as a point at all. Attenuating
// spot lights only light the scene and are never drawn.
func Visible(l *scene.Light) bool {
	return l.Flags.Has(scene.LightOn) && !l.Flags.Has(scene.LightAttenuate)
}
