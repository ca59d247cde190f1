// Package clock holds the simulation time values read by the renderer.
//
// A Clock is a plain value: the game loop advances it and hands a copy to
// every frame, so rendering never reads mutable process state.
package clock

import "time"

// Clock is a snapshot of simulation time for one frame.
type Clock struct {
	// Millitime is the simulation time in milliseconds.
	Millitime int64

	// Compensation scales per-frame motion to the actual frame duration,
	// 1.0 at the nominal frame rate.
	Compensation float32

	// Compression is the time acceleration factor, 1.0 for real time.
	Compression float32
}

// nominalFrame is the frame duration at which Compensation is 1.
const nominalFrame = time.Second / 30

// New returns a clock at time zero running in real time.
func New() Clock {
	return Clock{Compensation: 1, Compression: 1}
}

// Advance returns the clock moved forward by a real elapsed duration,
// scaled by the compression factor.
func (c Clock) Advance(elapsed time.Duration) Clock {
	if elapsed < 0 {
		elapsed = 0
	}
	scaled := time.Duration(float64(elapsed) * float64(c.compression()))
	c.Millitime += scaled.Milliseconds()
	c.Compensation = float32(float64(elapsed) / float64(nominalFrame))
	return c
}

// Now returns the simulation time.
func (c Clock) Now() time.Duration {
	return time.Duration(c.Millitime) * time.Millisecond
}

func (c Clock) compression() float32 {
	if c.Compression <= 0 {
		return 1
	}
	return c.Compression
}
