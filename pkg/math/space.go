package math

import "github.com/go-gl/mathgl/mgl32"

// ToRender converts a world position into render space, where Y is up
// and -Z points north. This is the only place the axis swap happens.
func ToRender(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Z, -v.Y}
}

// Translation returns the render space translation to world position p.
func Translation(p Vec3) mgl32.Mat4 {
	r := ToRender(p)
	return mgl32.Translate3D(r[0], r[1], r[2])
}

// HeadingRotation returns the render space rotation for a world heading.
func HeadingRotation(heading float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(-heading)
}

// AttitudeRotation returns the render space pitch then bank rotation
// applied after HeadingRotation.
func AttitudeRotation(pitch, bank float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(-pitch).Mul4(mgl32.HomogRotate3DZ(-bank))
}

// ModelMatrix returns the full object to render space transform: translate
// to the object position, then apply heading, pitch and bank.
func ModelMatrix(p Vec3, d Direction) mgl32.Mat4 {
	return Translation(p).Mul4(HeadingRotation(d.Heading)).Mul4(AttitudeRotation(d.Pitch, d.Bank))
}

// GroundMatrix returns the map view transform that places an object flat
// at sea level under its world position.
func GroundMatrix(p Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(p.X, 0, -p.Y)
}
