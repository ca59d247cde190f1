package math

import "math"

// Mat3 is a 3x3 rotation matrix in row-major order.
type Mat3 [9]float32

// HeadingMat3 returns a rotation about the Z (up) axis.
func HeadingMat3(theta float64) Mat3 {
	c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// PitchMat3 returns a rotation about the X axis.
func PitchMat3(theta float64) Mat3 {
	c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// BankMat3 returns a rotation about the Y (forward) axis.
func BankMat3(theta float64) Mat3 {
	c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}
