// Package math provides world-frame vector, angle and rotation helpers
// shared by the camera, visibility and render packages.
//
// World coordinates are right-handed with Z up: X east, Y north, Z altitude.
package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Distance2D returns the horizontal distance to another point, ignoring
// altitude.
func (v Vec3) Distance2D(other Vec3) float32 {
	return Hypot2(other.X-v.X, other.Y-v.Y)
}
