package math

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestQuaternionMulIdentity(t *testing.T) {
	q := Quaternion{0.1, 0.2, 0.3, 0.9}.Normalize()
	got := q.Mul(IdentityQuaternion())
	if !almostEqual(got.X, q.X) || !almostEqual(got.Y, q.Y) || !almostEqual(got.Z, q.Z) || !almostEqual(got.W, q.W) {
		t.Fatalf("q * identity = %+v, want %+v", got, q)
	}
}

func TestQuaternionInverseCancels(t *testing.T) {
	q := Quaternion{0.1, 0.2, 0.3, 0.9}.Normalize()
	got := q.Mul(q.Inverse())
	id := IdentityQuaternion()
	if !almostEqual(got.X, id.X) || !almostEqual(got.Y, id.Y) || !almostEqual(got.Z, id.Z) || !almostEqual(got.W, id.W) {
		t.Fatalf("q * q^-1 = %+v, want identity", got)
	}
}

func TestCoordinateConversionIsInvolution(t *testing.T) {
	p := Pose{
		Position:    Vec3{1, 2, 3},
		Orientation: Quaternion{0.1, 0.2, 0.3, 0.9284766908852594},
	}
	once := p.ToLeftHanded()
	twice := once.ToLeftHanded()

	if !almostEqual(twice.Position.X, p.Position.X) ||
		!almostEqual(twice.Position.Y, p.Position.Y) ||
		!almostEqual(twice.Position.Z, p.Position.Z) {
		t.Fatalf("position round-trip = %+v, want %+v", twice.Position, p.Position)
	}
	if !almostEqual(twice.Orientation.X, p.Orientation.X) ||
		!almostEqual(twice.Orientation.Y, p.Orientation.Y) ||
		!almostEqual(twice.Orientation.Z, p.Orientation.Z) ||
		!almostEqual(twice.Orientation.W, p.Orientation.W) {
		t.Fatalf("orientation round-trip = %+v, want %+v", twice.Orientation, p.Orientation)
	}
}

func TestCoordinateConversionSignFlip(t *testing.T) {
	p := Pose{
		Position:    Vec3{1, 2, 3},
		Orientation: Quaternion{0.1, 0.2, 0.3, 0.9284766908852594},
	}
	got := p.ToLeftHanded()
	want := Pose{
		Position:    Vec3{1, 2, -3},
		Orientation: Quaternion{-0.1, -0.2, 0.3, 0.9284766908852594},
	}
	if got != want {
		t.Fatalf("ToLeftHanded() = %+v, want %+v", got, want)
	}
}

func TestYawFromForwardX(t *testing.T) {
	// A 90 degree yaw rotation about Y takes forward (0,0,1) to (1,0,0).
	q := YawQuaternion(math.Pi / 2)
	yaw := q.Yaw()
	if !almostEqual(yaw, math.Pi/2) {
		t.Fatalf("Yaw() = %v, want pi/2", yaw)
	}
}

func TestYawQuaternionIsPureYaw(t *testing.T) {
	q := YawQuaternion(1.2345)
	if q.X != 0 || q.Z != 0 {
		t.Fatalf("YawQuaternion produced non-yaw components: %+v", q)
	}
}

func TestPoseMulComposesPositionAndOrientation(t *testing.T) {
	a := Pose{Position: Vec3{1, 0, 0}, Orientation: IdentityQuaternion()}
	b := Pose{Position: Vec3{0, 0, 1}, Orientation: IdentityQuaternion()}
	got := a.Mul(b)
	want := Vec3{1, 0, 1}
	if got.Position != want {
		t.Fatalf("Mul position = %+v, want %+v", got.Position, want)
	}
}
