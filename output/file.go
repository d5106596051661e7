package output

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
)

type fileWriter struct {
	path string
}

// Create a writer that saves images to a local file.
func NewFileWriter(path string) (Writer, error) {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return nil, ErrUnsupportedFormat
	}
	return &fileWriter{path: path}, nil
}

func (w *fileWriter) Write(_ context.Context, img image.Image) error {
	return imaging.Save(img, w.path)
}

func (w *fileWriter) String() string {
	return w.path
}
