package output

import (
	"context"
	"errors"
	"image"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("output: unsupported image format")
	ErrMissingBucket     = errors.New("output: s3 destination must specify a bucket and key")
)

const s3Scheme = "s3://"

// A Writer stores a rendered image.
type Writer interface {
	Write(ctx context.Context, img image.Image) error

	// A human readable description of the destination.
	String() string
}

// Create a writer for dst. Destinations of the form s3://bucket/key are
// uploaded to S3 using cfg; anything else is treated as a local file path.
// The image format is selected from the file extension.
func New(dst string, cfg S3Config) (Writer, error) {
	if strings.HasPrefix(dst, s3Scheme) {
		bucket, key, found := strings.Cut(strings.TrimPrefix(dst, s3Scheme), "/")
		if !found || bucket == "" || key == "" {
			return nil, ErrMissingBucket
		}
		return NewS3Writer(cfg, bucket, key)
	}

	return NewFileWriter(dst)
}
