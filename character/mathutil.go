package character

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const tau = 2 * math.Pi

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	worldRight = mgl32.Vec3{1, 0, 0}
)

// WrapAngle maps a into [0, 2π) using a Euclidean modulo.
func WrapAngle(a float32) float32 {
	r := math.Mod(float64(a), tau)
	if r < 0 {
		r += tau
	}
	wrapped := float32(r)
	// rounding back to float32 can land exactly on 2π
	if wrapped >= float32(tau) {
		return 0
	}
	return wrapped
}

// Heading returns the rotation about +Y that turns -Z towards dir in the XZ plane.
func Heading(dir mgl32.Vec3) mgl32.Quat {
	angle := -math.Atan2(float64(dir.X()), float64(-dir.Z()))
	return mgl32.QuatRotate(float32(angle), worldUp)
}

// LookAt returns the orientation whose -Z axis points from eye to target with
// +Y as close to up as possible.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Quat {
	back := eye.Sub(target)
	if back.Len() < 1e-6 {
		back = mgl32.Vec3{0, 0, 1}
	} else {
		back = back.Normalize()
	}

	right := up.Cross(back)
	if right.Len() < 1e-6 {
		// up and view direction are parallel
		right = orthogonal(back)
	} else {
		right = right.Normalize()
	}
	trueUp := back.Cross(right)

	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, trueUp, back).Mat4()).Normalize()
}

func orthogonal(v mgl32.Vec3) mgl32.Vec3 {
	other := worldRight
	if abs(v.X()) > 0.9 {
		other = mgl32.Vec3{0, 0, 1}
	}
	return other.Cross(v).Normalize()
}

// slerp interpolates along the shorter arc.
func slerp(from, to mgl32.Quat, t float32) mgl32.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl32.QuatSlerp(from, to, t).Normalize()
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
