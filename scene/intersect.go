package scene

import (
	"math"

	"github.com/achilleasa/aobench/types"
)

const (
	// The isect distance for rays that have not hit anything.
	NoHit float32 = 1e17

	// Rays whose direction is this close to parallel to a plane never hit it.
	planeParallelEpsilon = 1e-17
)

type Ray struct {
	Org types.Vec3
	Dir types.Vec3
}

// An intersection record. T, P, N and Hit are always updated together.
type Isect struct {
	T   float32
	P   types.Vec3
	N   types.Vec3
	Hit bool
}

// Create an isect record with no hit.
func NewIsect() Isect {
	return Isect{T: NoHit}
}

func (isect *Isect) record(t float32, p, n types.Vec3) {
	isect.T = t
	isect.P = p
	isect.N = n
	isect.Hit = true
}

// Intersect ray with plane.
func IntersectPlane(isect *Isect, ray *Ray, plane *Plane) {
	d := -plane.Point.Dot(plane.Normal)
	v := ray.Dir.Dot(plane.Normal)

	if float32(math.Abs(float64(v))) < planeParallelEpsilon {
		return
	}

	t := -(ray.Org.Dot(plane.Normal) + d) / v
	if t > 0 && t < isect.T {
		isect.record(t, ray.Org.Add(ray.Dir.Mul(t)), plane.Normal)
	}
}

// Intersect ray with sphere. Only the near root is considered so rays
// starting inside a sphere do not hit it.
func IntersectSphere(isect *Isect, ray *Ray, sphere *Sphere) {
	rs := ray.Org.Sub(sphere.Center)
	B := rs.Dot(ray.Dir)
	C := rs.Dot(rs) - sphere.Radius*sphere.Radius
	D := B*B - C

	if D <= 0 {
		return
	}

	t := -B - types.Sqrt(D)
	if t > 0 && t < isect.T {
		p := ray.Org.Add(ray.Dir.Mul(t))
		isect.record(t, p, p.Sub(sphere.Center).Normalize())
	}
}
