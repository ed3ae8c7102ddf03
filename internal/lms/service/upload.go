package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

// ObjectStore is where uploaded course files end up.
type ObjectStore interface {
	Put(ctx context.Context, obj PutObject) error
	PublicURL(bucket, key string) string
}

type PutObject struct {
	Bucket       string
	Key          string
	ContentType  string
	CacheControl string
	Size         int64
	Body         io.Reader
}

const uploadCacheControl = "max-age=3600"

type UploadService struct {
	Objects     ObjectStore
	ImageBucket string
	PDFBucket   string

	// MaxPDFBytes defaults to domain.MaxPDFBytes.
	MaxPDFBytes int64

	Clock Clock
}

// UploadCourseImage stores an image under courses/<unix-ms>-<name>.
func (s *UploadService) UploadCourseImage(ctx context.Context, up domain.Upload) (domain.StoredObject, error) {
	if up.Body == nil {
		return domain.StoredObject{}, because(ErrValidation, "No image uploaded")
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.put(ctx, s.ImageBucket, "courses", contentType, up)
}

// UploadCoursePDF stores a PDF under pdfs/<unix-ms>-<name>.
func (s *UploadService) UploadCoursePDF(ctx context.Context, up domain.Upload) (domain.StoredObject, error) {
	if up.Body == nil {
		return domain.StoredObject{}, because(ErrValidation, "No PDF uploaded")
	}
	if up.ContentType != domain.ContentTypePDF {
		return domain.StoredObject{}, because(ErrValidation, "Only PDF files are allowed")
	}

	limit := s.MaxPDFBytes
	if limit <= 0 {
		limit = domain.MaxPDFBytes
	}
	if up.Size > limit {
		return domain.StoredObject{}, because(ErrValidation, "PDF must be less than 10MB")
	}
	return s.put(ctx, s.PDFBucket, "pdfs", domain.ContentTypePDF, up)
}

func (s *UploadService) put(ctx context.Context, bucket, prefix, contentType string, up domain.Upload) (domain.StoredObject, error) {
	name := cleanFileName(up.Name)
	key := prefix + "/" + strconv.FormatInt(s.Clock.now().UnixMilli(), 10) + "-" + name

	err := s.Objects.Put(ctx, PutObject{
		Bucket:       bucket,
		Key:          key,
		ContentType:  contentType,
		CacheControl: uploadCacheControl,
		Size:         up.Size,
		Body:         up.Body,
	})
	if err != nil {
		return domain.StoredObject{}, fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}

	slogx.FromContext(ctx).Info("file uploaded",
		slog.String("bucket", bucket),
		slog.String("key", key),
		slog.Int64("size", up.Size),
	)

	return domain.StoredObject{
		Bucket: bucket,
		Key:    key,
		URL:    s.Objects.PublicURL(bucket, key),
		Name:   up.Name,
		Size:   up.Size,
	}, nil
}

// cleanFileName keeps only the last path element of a client file name.
func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}
