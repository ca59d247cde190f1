package lighting

import "github.com/sar2/sar2/internal/scene"

// strobeLowPoint is where in the off interval a strobe reaches its dimmest.
const strobeLowPoint = 0.3

// Intensity returns the brightness coefficient of a light at time now, in
// simulation milliseconds. Steady lights are always 1. A strobe that is off
// and waiting for NextOn fades within [0, 0.5] with its low point 30% into
// the remaining wait; a strobe that is on fades within [0.5, 1].
func Intensity(l *scene.Light, now int64) float32 {
	if !l.Flags.Has(scene.LightStrobe) {
		return 1
	}

	if l.NextOn > 0 {
		var c float32
		if l.IntervalOff > 0 {
			c = clip(float32(l.NextOn-now) / float32(l.IntervalOff))
		}
		if c > strobeLowPoint {
			return (c - strobeLowPoint) * (0.5 / (1 - strobeLowPoint))
		}
		return (strobeLowPoint - c) * (0.5 / strobeLowPoint)
	}

	c := float32(1)
	if l.IntervalOn > 0 {
		c = clip(float32(l.NextOff-now) / float32(l.IntervalOn))
	}
	if c > 0.5 {
		c = 1 - c
	}
	return c + 0.5
}

func clip(v float32) float32 {
	return min(max(v, 0), 1)
}
