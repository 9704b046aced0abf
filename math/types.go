package math

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion struct {
	X, Y, Z, W float32
}

// Pose is a rigid transform: an orientation and a position, the same
// shape OpenXR reports for views and space locations.
type Pose struct {
	Orientation Quaternion
	Position    Vec3
}

// IdentityQuaternion returns the no-rotation quaternion.
func IdentityQuaternion() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// IdentityPose returns the origin pose with no rotation.
func IdentityPose() Pose {
	return Pose{Orientation: IdentityQuaternion()}
}

// YawQuaternion builds the pure-yaw quaternion (0, sin(theta/2), 0, cos(theta/2))
// that the play-space offset is required to always be (spec invariant: no
// pitch/roll is ever introduced by recentering).
func YawQuaternion(theta float32) Quaternion {
	return Quaternion{0, ksin(theta / 2), 0, kcos(theta / 2)}
}
