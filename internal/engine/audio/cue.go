package audio

import (
	gomath "math"

	"github.com/sar2/sar2/internal/scene"
)

// DefaultAudibleRadius is how far an engine without a configured source
// range can be heard, in meters.
const DefaultAudibleRadius = 2000

// EngineSource describes one engine loop recording.
type EngineSource struct {
	// RateLimit is the playback ratio at full throttle. Zero means 1.
	RateLimit float64
	// Range is the audible radius in meters. Zero means
	// DefaultAudibleRadius.
	Range float32
}

func (s *EngineSource) rateLimit() float64 {
	if s == nil || s.RateLimit <= 0 {
		return 1
	}
	return s.RateLimit
}

func (s *EngineSource) audibleRadius() float32 {
	if s == nil || s.Range <= 0 {
		return DefaultAudibleRadius
	}
	return s.Range
}

// EngineUpdate is the per-frame engine state of one visible aircraft.
type EngineUpdate struct {
	// EarInCockpit selects the inside loop instead of the outside one.
	EarInCockpit bool
	Running      bool
	Throttle     float32
	// Distance is the 3-D distance from the camera in meters.
	Distance float32
}

// Levels are the computed volumes and playback ratio of an engine.
type Levels struct {
	Inside  float64
	Outside float64
	Ratio   float64
}

// Silent reports whether neither loop is audible.
func (l Levels) Silent() bool {
	return l.Inside <= 0 && l.Outside <= 0
}

// EngineLevels computes loop volumes from throttle and distance. Volume
// falls off as 1 - sqrt(distance / radius). The playback ratio follows
// the throttle; at zero throttle both loops are silent.
func EngineLevels(u EngineUpdate, inside, outside *EngineSource) Levels {
	src := outside
	if u.EarInCockpit && inside != nil {
		src = inside
	}

	throttle := float64(u.Throttle)
	if !u.Running {
		throttle = 0
	}
	l := Levels{Ratio: src.rateLimit() * clamp(throttle, 0, 1)}
	if l.Ratio == 0 {
		return l
	}

	radius := float64(src.audibleRadius())
	vol := clamp(1-gomath.Sqrt(float64(max(u.Distance, 0))/radius), 0, 1)
	if u.EarInCockpit {
		l.Inside = vol
	} else {
		l.Outside = vol
	}
	return l
}

// StallInput is the player aircraft state the stall warning reads.
type StallInput struct {
	FlightModel scene.FlightModel
	Landed      bool
	// Speed is compared against StallSpeed, both in meters per cycle.
	Speed      float32
	StallSpeed float32
}

// Stalling reports whether the stall warning should sound. Only airborne
// airplanes stall.
func Stalling(in StallInput) bool {
	if in.Landed || in.FlightModel != scene.FlightModelAirplane {
		return false
	}
	return in.StallSpeed > 0 && in.Speed < in.StallSpeed
}
