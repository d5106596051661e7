package ao

import (
	"math"

	"github.com/achilleasa/aobench/scene"
	"github.com/achilleasa/aobench/types"
)

const (
	// Samples per axis of the stratified hemisphere grid.
	NAOSamples = 8

	// Offset along the surface normal for occlusion ray origins.
	rayOffset = 1e-4
)

// Estimate the fraction of the hemisphere above a primary hit that is not
// blocked by scene geometry. Any hit counts as occluded regardless of its
// distance from the surface. The result lies in [0, 1].
func AmbientOcclusion(isect *scene.Isect, sc *scene.Scene, rng *Rng) float32 {
	const totalSamples = NAOSamples * NAOSamples

	org := isect.P.Add(isect.N.Mul(rayOffset))
	basis := OrthoBasis(isect.N)

	occluded := 0
	for j := 0; j < NAOSamples; j++ {
		for i := 0; i < NAOSamples; i++ {
			theta := float64(types.Sqrt(rng.Float32()))
			phi := 2.0 * math.Pi * float64(rng.Float32())

			x := float32(math.Cos(phi) * theta)
			y := float32(math.Sin(phi) * theta)
			z := float32(math.Sqrt(1.0 - theta*theta))

			ray := scene.Ray{
				Org: org,
				Dir: basis.ToWorld(x, y, z),
			}

			occIsect := scene.NewIsect()
			sc.Intersect(&occIsect, &ray)
			if occIsect.Hit {
				occluded++
			}
		}
	}

	return float32(totalSamples-occluded) / float32(totalSamples)
}
