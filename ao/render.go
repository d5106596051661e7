package ao

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/achilleasa/aobench/scene"
	"github.com/achilleasa/aobench/types"
)

// Distance between the eye and the image plane of the pinhole camera.
const focalDistance = 1.25

// Build the primary ray for the NDC coordinates (px, py). The camera sits
// at the origin looking down -Z.
func PrimaryRay(px, py float32) scene.Ray {
	return scene.Ray{
		Dir: types.XYZ(px, py, -focalDistance).Normalize(),
	}
}

// Render the image rows [y0, y1) and add the AO estimate of each pixel into
// image, a row-major buffer of width*height floats. Every pixel is sampled
// with subsamples x subsamples jittered primary rays whose contributions are
// box filtered. Pixel updates are atomic so concurrent calls may target
// overlapping rows.
func RenderRows(sc *scene.Scene, rng *Rng, y0, y1, width, height, subsamples int, image []float32) {
	fw := float32(width)
	fh := float32(height)
	halfW := fw / 2
	halfH := fh / 2
	aspect := fw / fh
	invSub := 1.0 / float32(subsamples)
	weight := invSub * invSub

	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			var hits int
			for u := 0; u < subsamples; u++ {
				for v := 0; v < subsamples; v++ {
					du := float32(u) * invSub
					dv := float32(v) * invSub

					px := (float32(x) + du - halfW) / halfW
					py := -(float32(y) + dv - halfH) / halfH
					px *= aspect

					ray := PrimaryRay(px, py)
					isect := scene.NewIsect()
					sc.Intersect(&isect, &ray)
					if !isect.Hit {
						continue
					}

					sum += AmbientOcclusion(&isect, sc, rng) * weight
					hits++
				}
			}

			if hits != 0 {
				addFloat32(&image[y*width+x], sum)
			}
		}
	}
}

// Render the full frame into image. The caller must supply a zeroed buffer
// of width*height floats.
func Render(sc *scene.Scene, width, height, subsamples int, image []float32) {
	RenderRows(sc, NewRng(Seed(0, 0)), 0, height, width, height, subsamples, image)
}

func addFloat32(addr *float32, delta float32) {
	bits := (*uint32)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint32(bits)
		next := math.Float32bits(math.Float32frombits(old) + delta)
		if atomic.CompareAndSwapUint32(bits, old, next) {
			return
		}
	}
}
