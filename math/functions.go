package math

import m "math"

const kEpsilon = 0.000001

func ksin(x float32) float32      { return float32(m.Sin(float64(x))) }
func kcos(x float32) float32      { return float32(m.Cos(float64(x))) }
func katan2(y, x float32) float32 { return float32(m.Atan2(float64(y), float64(x))) }
func ksqrt(x float32) float32     { return float32(m.Sqrt(float64(x))) }

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// MulScalar returns a scaled by k.
func (a Vec3) MulScalar(k float32) Vec3 {
	return Vec3{a.X * k, a.Y * k, a.Z * k}
}

func (a Vec3) LengthSquared() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

func (a Vec3) Length() float32 {
	return ksqrt(a.LengthSquared())
}

// NegateZ flips the Z axis, the position half of the right-handed to
// left-handed conversion (spec: Position (x, y, -z)).
func (a Vec3) NegateZ() Vec3 {
	return Vec3{a.X, a.Y, -a.Z}
}

// Normal returns the length (Euclidean norm) of q.
func (q Quaternion) Normal() float32 {
	return ksqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length.
func (q Quaternion) Normalize() Quaternion {
	n := q.Normal()
	if n < kEpsilon {
		return IdentityQuaternion()
	}
	return Quaternion{q.X / n, q.Y / n, q.Z / n, q.W / n}
}

// Conjugate returns the conjugate of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the inverse of q, equal to the conjugate for a unit
// quaternion.
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalize()
}

// Mul composes two rotations (Hamilton product, q * r): applied to a
// vector, the result rotates by r first and then by q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		X: q.X*r.W + q.Y*r.Z - q.Z*r.Y + q.W*r.X,
		Y: -q.X*r.Z + q.Y*r.W + q.Z*r.X + q.W*r.Y,
		Z: q.X*r.Y - q.Y*r.X + q.Z*r.W + q.W*r.Z,
		W: -q.X*r.X - q.Y*r.Y - q.Z*r.Z + q.W*r.W,
	}
}

// NegateXY flips the X and Y axes, the orientation half of the
// right-handed to left-handed conversion (spec: Orientation (-x, -y, z, w)).
func (q Quaternion) NegateXY() Quaternion {
	return Quaternion{-q.X, -q.Y, q.Z, q.W}
}

// Apply rotates v by q (q * (0, v) * q^-1).
func (q Quaternion) Apply(v Vec3) Vec3 {
	p := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Mul(p).Mul(q.Inverse())
	return Vec3{r.X, r.Y, r.Z}
}

// Yaw extracts the yaw angle of q by rotating the forward vector (0,0,1)
// through it and taking atan2(x, z). Used by recenter to derive a
// pure-yaw play-space offset from an arbitrary head orientation.
func (q Quaternion) Yaw() float32 {
	forward := q.Apply(Vec3{0, 0, 1})
	return katan2(forward.X, forward.Z)
}

// Mul composes poses: applies b in a's frame, so the result places b
// relative to a (result.Orientation = a.Orientation * b.Orientation,
// result.Position = a.Position + a.Orientation applied to b.Position).
func (a Pose) Mul(b Pose) Pose {
	return Pose{
		Orientation: a.Orientation.Mul(b.Orientation).Normalize(),
		Position:    a.Position.Add(a.Orientation.Apply(b.Position)),
	}
}

// ToLeftHanded converts a pose reported in OpenXR's right-handed space
// into the host renderer's left-handed convention.
func (p Pose) ToLeftHanded() Pose {
	return Pose{
		Orientation: p.Orientation.NegateXY(),
		Position:    p.Position.NegateZ(),
	}
}
