package math

import (
	gomath "math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v, want {5 7 9}", sum)
	}

	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v, want {3 3 3}", diff)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want {0 0 1}", z)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()

	if !approxEqual(n.Length(), 1) {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}
	if !approxEqual(n.X, 0.6) || !approxEqual(n.Z, 0.8) {
		t.Errorf("normalize: got %v, want {0.6 0 0.8}", n)
	}

	// Zero vector stays zero instead of producing NaN
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing zero vector should return zero")
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{2, -3}.Scale(0.5)
	if v != (Vec2{1, -1.5}) {
		t.Errorf("Scale: got %v, want {1 -1.5}", v)
	}
}
