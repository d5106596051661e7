package types

import (
	"math"
	"testing"
)

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestVec3Ops(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, -5, 6)

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Fatalf("expected Add to return (5, -3, 9); got %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Fatalf("expected Sub to return (-3, 7, -3); got %v", got)
	}
	if got := a.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Fatalf("expected Mul to return (2, 4, 6); got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Fatalf("expected Dot to return 12; got %f", got)
	}
	if got := AxisX.Cross(AxisY); got != AxisZ {
		t.Fatalf("expected X cross Y to be Z; got %v", got)
	}
	if got := AxisY.Cross(AxisZ); got != AxisX {
		t.Fatalf("expected Y cross Z to be X; got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	specs := []Vec3{
		{3, 4, 0},
		{0, 0, -7},
		{1, 1, 1},
		{-0.25, 10, 3},
	}

	for index, v := range specs {
		n := v.Normalize()
		if !approxEq(n.Len(), 1) {
			t.Fatalf("[spec %d] expected unit length; got %f", index, n.Len())
		}
		if !approxEq(n.Dot(v), v.Len()) {
			t.Fatalf("[spec %d] expected normalized vector to keep its direction", index)
		}
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("expected zero vector to stay zero; got %v", got)
	}
}
