package audio

import (
	gomath "math"

	"github.com/gopxl/beep/v2"
)

// EngineDrone returns an endless synthetic engine hum: a base tone with
// two harmonics. It stands in for recorded engine loops.
func EngineDrone(sr beep.SampleRate, freq float64) beep.Streamer {
	step := freq / float64(sr)
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			p := 2 * gomath.Pi * phase
			v := 0.5*gomath.Sin(p) + 0.3*gomath.Sin(2*p) + 0.2*gomath.Sin(3*p)
			samples[i][0] = v * 0.5
			samples[i][1] = v * 0.5
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	})
}

// Beeper returns an endless on-off square tone, used for warning cues.
func Beeper(sr beep.SampleRate, freq float64, period float64) beep.Streamer {
	step := freq / float64(sr)
	half := int(period * float64(sr) / 2)
	var phase float64
	var n int
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.0
			if half <= 0 || (n/half)%2 == 0 {
				if phase < 0.5 {
					v = 0.25
				} else {
					v = -0.25
				}
			}
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 1 {
				phase--
			}
			n++
		}
		return len(samples), true
	})
}
