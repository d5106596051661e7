package scene

import "github.com/achilleasa/aobench/types"

// A sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float32
}

// An infinite plane defined by a point on the plane and its unit normal.
type Plane struct {
	Point  types.Vec3
	Normal types.Vec3
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
	}
}

// Create new plane primitive. The supplied normal is normalized.
func NewPlane(point, normal types.Vec3) Plane {
	return Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}
