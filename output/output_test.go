package output

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func testImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 8)
	}
	img.SetGray(0, 0, color.Gray{Y: 255})
	return img
}

func TestFileWriter(t *testing.T) {
	for _, ext := range []string{"png", "jpg", "bmp", "tiff"} {
		dst := filepath.Join(t.TempDir(), "frame."+ext)
		w, err := New(dst, S3Config{})
		if err != nil {
			t.Fatalf("[%s] %v", ext, err)
		}
		if w.String() != dst {
			t.Fatalf("[%s] expected writer description %q; got %q", ext, dst, w.String())
		}

		if err = w.Write(context.Background(), testImage()); err != nil {
			t.Fatalf("[%s] %v", ext, err)
		}

		img, err := imaging.Open(dst)
		if err != nil {
			t.Fatalf("[%s] %v", ext, err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
			t.Fatalf("[%s] expected 8x4 image; got %v", ext, img.Bounds())
		}
	}
}

func TestNewRejectsBadDestinations(t *testing.T) {
	type spec struct {
		dst    string
		expErr error
	}
	specs := []spec{
		{"frame.xyz", ErrUnsupportedFormat},
		{"frame", ErrUnsupportedFormat},
		{"s3://bucket", ErrMissingBucket},
		{"s3:///key.png", ErrMissingBucket},
		{"s3://bucket/", ErrMissingBucket},
		{"s3://bucket/frame.xyz", ErrUnsupportedFormat},
	}

	for index, s := range specs {
		_, err := New(s.dst, S3Config{})
		if err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        []byte
}

func TestS3Writer(t *testing.T) {
	reqChan := make(chan capturedRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqChan <- capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := S3Config{
		AccessKey:  "access",
		SecretKey:  "secret",
		Endpoint:   server.URL,
		DisableSSL: true,
	}
	w, err := New("s3://renders/ao/frame.png", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if w.String() != "s3://renders/ao/frame.png" {
		t.Fatalf("unexpected writer description %q", w.String())
	}

	if err = w.Write(context.Background(), testImage()); err != nil {
		t.Fatal(err)
	}

	got := <-reqChan
	if got.method != http.MethodPut {
		t.Fatalf("expected a PUT request; got %s", got.method)
	}
	if got.path != "/renders/ao/frame.png" {
		t.Fatalf("expected path-style object path; got %s", got.path)
	}
	if got.contentType != "image/png" {
		t.Fatalf("expected content type image/png; got %s", got.contentType)
	}

	img, err := imaging.Decode(bytes.NewReader(got.body))
	if err != nil {
		t.Fatalf("expected uploaded body to be a valid image: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("expected 8x4 image; got %v", img.Bounds())
	}
}

func TestS3WriterUploadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer server.Close()

	cfg := S3Config{
		AccessKey:  "access",
		SecretKey:  "secret",
		Endpoint:   server.URL,
		DisableSSL: true,
	}
	w, err := NewS3Writer(cfg, "renders", "frame.png")
	if err != nil {
		t.Fatal(err)
	}

	if err = w.Write(context.Background(), testImage()); err == nil {
		t.Fatal("expected upload error")
	}
}
