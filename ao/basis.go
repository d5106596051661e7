package ao

import "github.com/achilleasa/aobench/types"

// Components of the normal inside (-seedThreshold, seedThreshold) are far
// enough from parallel to the matching axis to seed a cross product.
const seedThreshold = 0.6

// An orthonormal frame with N as its third axis.
type Basis struct {
	T types.Vec3
	B types.Vec3
	N types.Vec3
}

// Build an orthonormal basis around the unit vector n.
func OrthoBasis(n types.Vec3) Basis {
	seed := types.AxisX
	switch {
	case n[0] < seedThreshold && n[0] > -seedThreshold:
		seed = types.AxisX
	case n[1] < seedThreshold && n[1] > -seedThreshold:
		seed = types.AxisY
	case n[2] < seedThreshold && n[2] > -seedThreshold:
		seed = types.AxisZ
	}

	t := seed.Cross(n).Normalize()
	return Basis{
		T: t,
		B: n.Cross(t).Normalize(),
		N: n,
	}
}

// Transform a vector expressed in the basis frame to world space.
func (b Basis) ToWorld(x, y, z float32) types.Vec3 {
	return types.Vec3{
		x*b.T[0] + y*b.B[0] + z*b.N[0],
		x*b.T[1] + y*b.B[1] + z*b.N[1],
		x*b.T[2] + y*b.B[2] + z*b.N[2],
	}
}
