package math

import "math"

// Direction is an attitude in radians. Heading is measured clockwise from
// north (+Y), pitch is positive nose down, bank is positive right wing down.
type Direction struct {
	Heading, Pitch, Bank float32
}

// Hypot2 returns sqrt(x*x + y*y).
func Hypot2(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}

// SanitizeRadians wraps r into [0, 2*Pi).
func SanitizeRadians(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}

// DegToRad converts degrees to radians.
func DegToRad(d float32) float32 {
	return d * math.Pi / 180
}

// MilesToMeters converts statute miles to meters.
func MilesToMeters(miles float32) float32 {
	return miles / 0.00062137
}

// DirFromPos returns the heading and pitch of the line of sight from
// "from" to "to". Bank is always zero.
func DirFromPos(from, to Vec3) Direction {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	dz := float64(to.Z - from.Z)
	r := math.Hypot(dx, dy)

	return Direction{
		Heading: float32(SanitizeRadians(math.Pi/2 - math.Atan2(dy, dx))),
		Pitch:   float32(SanitizeRadians(-math.Atan2(dz, r))),
	}
}
