package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/disintegration/imaging"
)

const defaultRegion = "us-east-1"

// S3 connection settings.
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string

	// Set for plain http endpoints such as local object stores.
	DisableSSL bool
}

type s3Writer struct {
	client *s3.S3
	bucket string
	key    string
	format imaging.Format
}

// Create a writer that uploads images to an S3 bucket.
func NewS3Writer(cfg S3Config, bucket, key string) (Writer, error) {
	format, err := imaging.FormatFromFilename(key)
	if err != nil {
		return nil, ErrUnsupportedFormat
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg := &aws.Config{
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(cfg.DisableSSL),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("output: could not create s3 session: %w", err)
	}

	return &s3Writer{
		client: s3.New(sess),
		bucket: bucket,
		key:    key,
		format: format,
	}, nil
}

func (w *s3Writer) Write(ctx context.Context, img image.Image) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, w.format); err != nil {
		return fmt.Errorf("output: could not encode image: %w", err)
	}

	contentType := mime.TypeByExtension(path.Ext(w.key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	size := int64(buf.Len())
	_, err := w.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(w.bucket),
		Key:           aws.String(w.key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("output: failed to upload %s: %w", w, err)
	}

	return nil
}

func (w *s3Writer) String() string {
	return s3Scheme + w.bucket + "/" + w.key
}
