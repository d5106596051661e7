package ao

import (
	"math"
	"testing"

	"github.com/achilleasa/aobench/types"
)

func approxEq(a, b, tolerance float32) bool {
	return math.Abs(float64(a-b)) < float64(tolerance)
}

func TestOrthoBasisIsOrthonormal(t *testing.T) {
	specs := []types.Vec3{
		types.AxisX,
		types.AxisY,
		types.AxisZ,
		types.AxisX.Mul(-1),
		types.AxisY.Mul(-1),
		types.AxisZ.Mul(-1),
		types.XYZ(1, 1, 1).Normalize(),
		types.XYZ(0.59, 0.8, 0.1).Normalize(),
		types.XYZ(-0.3, 0.2, -0.93).Normalize(),
	}

	// Add a batch of pseudo-random normals.
	rng := NewRng(7)
	for i := 0; i < 64; i++ {
		n := types.XYZ(2*rng.Float32()-1, 2*rng.Float32()-1, 2*rng.Float32()-1)
		if n.Len() < 1e-3 {
			continue
		}
		specs = append(specs, n.Normalize())
	}

	for index, n := range specs {
		b := OrthoBasis(n)
		if b.N != n {
			t.Fatalf("[spec %d] expected third axis to equal the input normal", index)
		}
		for axisIndex, axis := range []types.Vec3{b.T, b.B, b.N} {
			if !approxEq(axis.Len(), 1, 1e-5) {
				t.Fatalf("[spec %d] expected axis %d to have unit length; got %f", index, axisIndex, axis.Len())
			}
		}
		if !approxEq(b.T.Dot(b.B), 0, 1e-5) || !approxEq(b.T.Dot(b.N), 0, 1e-5) || !approxEq(b.B.Dot(b.N), 0, 1e-5) {
			t.Fatalf("[spec %d] expected mutually orthogonal axes; got %+v", index, b)
		}
	}
}

func TestOrthoBasisSeedAxis(t *testing.T) {
	type spec struct {
		n    types.Vec3
		expT types.Vec3
	}
	specs := []spec{
		// x lies in range; seed is X
		{types.AxisY, types.AxisZ},
		// x out of range, y in range; seed is Y
		{types.AxisX, types.AxisZ.Mul(-1)},
		// all components in range; seed is X
		{types.XYZ(0, 0.5, 0.5), types.XYZ(0, -1, 1).Normalize()},
	}

	for index, s := range specs {
		n := s.n.Normalize()
		b := OrthoBasis(n)
		for i := 0; i < 3; i++ {
			if !approxEq(b.T[i], s.expT[i], 1e-5) {
				t.Fatalf("[spec %d] expected tangent %v; got %v", index, s.expT, b.T)
			}
		}
	}
}

func TestBasisToWorld(t *testing.T) {
	b := OrthoBasis(types.AxisY)
	if got := b.ToWorld(0, 0, 1); got != types.AxisY {
		t.Fatalf("expected local Z to map to the normal; got %v", got)
	}
	if got := b.ToWorld(1, 0, 0); got != b.T {
		t.Fatalf("expected local X to map to the tangent; got %v", got)
	}
	if got := b.ToWorld(0, 1, 0); got != b.B {
		t.Fatalf("expected local Y to map to the bitangent; got %v", got)
	}
}
