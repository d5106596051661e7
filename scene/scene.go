package scene

import (
	"fmt"

	"github.com/achilleasa/aobench/types"
)

// The scene contains a ground plane and a list of spheres. A scene must not
// be modified while a frame is being rendered; tracers share it by pointer.
type Scene struct {
	Plane   Plane
	Spheres []Sphere
}

func NewScene(plane Plane, spheres ...Sphere) *Scene {
	return &Scene{
		Plane:   plane,
		Spheres: spheres,
	}
}

// Create the benchmark scene: a ground plane at y=-0.5 and four spheres.
func Default() *Scene {
	return NewScene(
		NewPlane(types.XYZ(0, -0.5, 0), types.XYZ(0, 1, 0)),
		NewSphere(types.XYZ(-2.0, 0, -3.5), 0.5),
		NewSphere(types.XYZ(-0.5, 0, -3.0), 0.5),
		NewSphere(types.XYZ(1.0, 0, -2.2), 0.5),
		NewSphere(types.XYZ(0.5, -0.25, -4.0), 0.25),
	)
}

// Find the closest intersection between the ray and any scene primitive.
// The isect record is only updated if a hit closer than isect.T is found.
func (s *Scene) Intersect(isect *Isect, ray *Ray) {
	for i := range s.Spheres {
		IntersectSphere(isect, ray, &s.Spheres[i])
	}
	IntersectPlane(isect, ray, &s.Plane)
}

func (s *Scene) String() string {
	return fmt.Sprintf("scene: plane (normal %v) + %d sphere(s)", s.Plane.Normal, len(s.Spheres))
}
