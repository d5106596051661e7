package frame

import (
	"image"

	"github.com/nfnt/resize"
)

// A row-major buffer of per-pixel ambient occlusion values.
type Buffer struct {
	W   int
	H   int
	Pix []float32
}

// Allocate a zeroed w x h frame buffer.
func New(w, h int) *Buffer {
	return &Buffer{
		W:   w,
		H:   h,
		Pix: make([]float32, w*h),
	}
}

// Zero all pixels.
func (b *Buffer) Reset() {
	for i := range b.Pix {
		b.Pix[i] = 0
	}
}

// Get the value of the pixel at (x, y).
func (b *Buffer) At(x, y int) float32 {
	return b.Pix[y*b.W+x]
}

// Convert the frame to an 8-bit grayscale image.
func (b *Buffer) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.W, b.H))
	for i, v := range b.Pix {
		img.Pix[i] = toByte(v)
	}
	return img
}

// Convert the frame to an image of the requested size. A zero dimension
// keeps the frame's aspect ratio; if both are zero no resampling is performed.
func (b *Buffer) Image(outW, outH uint) image.Image {
	img := b.Gray()
	if (outW == 0 && outH == 0) || (int(outW) == b.W && int(outH) == b.H) {
		return img
	}
	return resize.Resize(outW, outH, img, resize.Lanczos3)
}

// Mean pixel value.
func (b *Buffer) Mean() float32 {
	if len(b.Pix) == 0 {
		return 0
	}
	var sum float64
	for _, v := range b.Pix {
		sum += float64(v)
	}
	return float32(sum / float64(len(b.Pix)))
}

func toByte(v float32) uint8 {
	i := int(v * 255.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint8(i)
}
