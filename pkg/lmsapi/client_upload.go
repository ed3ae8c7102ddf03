package lmsapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// UploadCourseImage sends an image as the "image" multipart field.
func (s *Session) UploadCourseImage(ctx context.Context, filename, contentType string, r io.Reader) (*ImageUploadResponse, error) {
	var out ImageUploadResponse
	if err := s.upload(ctx, "/api/course-images", "image", filename, contentType, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadCoursePDF sends a PDF as the "pdf" multipart field.
func (s *Session) UploadCoursePDF(ctx context.Context, filename, contentType string, r io.Reader) (*PDFUploadResponse, error) {
	var out PDFUploadResponse
	if err := s.upload(ctx, "/api/course-pdfs", "pdf", filename, contentType, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) upload(ctx context.Context, path, field, filename, contentType string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	resp, err := s.client.do(ctx, http.MethodPost, path, s.token, &buf, map[string]string{
		"Content-Type": mw.FormDataContentType(),
	})
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, http.StatusOK)
}
