// Package objectstore puts uploaded course files into an S3-compatible bucket
// (AWS, MinIO, Supabase storage).
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aussiebroadwan/lms/internal/lms/service"
)

var _ service.ObjectStore = (*S3)(nil)

type Config struct {
	Endpoint        string // empty means AWS
	Region          string
	AccessKeyID     string
	SecretAccessKey string

	// PublicBaseURL prefixes "<bucket>/<key>" in returned URLs. Defaults to
	// Endpoint, or the regional AWS endpoint when that is empty too.
	PublicBaseURL string

	UsePathStyle bool
}

type S3 struct {
	client     *s3.Client
	publicBase string
}

func New(ctx context.Context, cfg Config) (*S3, error) {
	publicBase := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		publicBase = strings.TrimRight(cfg.Endpoint, "/")
	}
	if publicBase == "" {
		publicBase = "https://s3." + cfg.Region + ".amazonaws.com"
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("objectstore: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		// Most S3-compatible stores reject the newer default checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &S3{client: client, publicBase: publicBase}, nil
}

func (s *S3) Put(ctx context.Context, obj service.PutObject) error {
	body := obj.Body
	size := obj.Size

	// Payload signing over plain HTTP needs a seekable body.
	if _, ok := body.(io.ReadSeeker); !ok {
		b, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("objectstore: read body: %w", err)
		}
		body = bytes.NewReader(b)
		size = int64(len(b))
	}

	in := &s3.PutObjectInput{
		Bucket:      aws.String(obj.Bucket),
		Key:         aws.String(obj.Key),
		Body:        body,
		ContentType: aws.String(obj.ContentType),
	}
	if obj.CacheControl != "" {
		in.CacheControl = aws.String(obj.CacheControl)
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("objectstore: put %s/%s: %w", obj.Bucket, obj.Key, err)
	}
	return nil
}

// PublicURL is where a stored object can be fetched anonymously.
func (s *S3) PublicURL(bucket, key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.publicBase + "/" + url.PathEscape(bucket) + "/" + strings.Join(parts, "/")
}
