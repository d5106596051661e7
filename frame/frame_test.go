package frame

import (
	"image"
	"testing"
)

func TestGrayConversion(t *testing.T) {
	b := New(4, 1)
	b.Pix[0] = -0.5
	b.Pix[1] = 0.5
	b.Pix[2] = 1.0
	b.Pix[3] = 3.0

	img := b.Gray()
	exp := []uint8{0, 127, 255, 255}
	for i, v := range exp {
		if img.Pix[i] != v {
			t.Fatalf("[pixel %d] expected %d; got %d", i, v, img.Pix[i])
		}
	}
	if img.Bounds() != image.Rect(0, 0, 4, 1) {
		t.Fatalf("expected 4x1 image; got %v", img.Bounds())
	}
}

func TestResetAndAt(t *testing.T) {
	b := New(3, 2)
	b.Pix[5] = 0.75
	if b.At(2, 1) != 0.75 {
		t.Fatalf("expected pixel (2, 1) to be 0.75; got %f", b.At(2, 1))
	}
	if got := b.Mean(); got != 0.125 {
		t.Fatalf("expected mean 0.125; got %f", got)
	}

	b.Reset()
	for i, v := range b.Pix {
		if v != 0 {
			t.Fatalf("[pixel %d] expected zero after reset; got %f", i, v)
		}
	}
}

func TestImageResampling(t *testing.T) {
	b := New(8, 4)
	for i := range b.Pix {
		b.Pix[i] = 1
	}

	type spec struct {
		outW, outH uint
		exp        image.Rectangle
	}
	specs := []spec{
		{0, 0, image.Rect(0, 0, 8, 4)},
		{8, 4, image.Rect(0, 0, 8, 4)},
		{4, 2, image.Rect(0, 0, 4, 2)},
		{16, 0, image.Rect(0, 0, 16, 8)},
	}

	for index, s := range specs {
		img := b.Image(s.outW, s.outH)
		if img.Bounds() != s.exp {
			t.Fatalf("[spec %d] expected bounds %v; got %v", index, s.exp, img.Bounds())
		}
	}
}
