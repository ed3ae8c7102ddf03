package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
)

// multipartOverhead is the slack given on top of MaxBytes for boundaries
// and part headers.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	UploadService *service.UploadService

	// MaxBytes caps a single uploaded file. Defaults to domain.MaxPDFBytes.
	MaxBytes int64
}

func (h *UploadHandler) maxBytes() int64 {
	if h.MaxBytes > 0 {
		return h.MaxBytes
	}
	return domain.MaxPDFBytes
}

// formFile reads the multipart field and writes a 400 when it is missing or
// too large. The caller closes the returned file.
func (h *UploadHandler) formFile(w http.ResponseWriter, r *http.Request, field, missing string) (multipart.File, domain.Upload, bool) {
	limit := h.maxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation, "File too large").WriteError(w)
			return nil, domain.Upload{}, false
		}
		lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation, missing).WithCause(err).WriteError(w)
		return nil, domain.Upload{}, false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation, missing).WriteError(w)
		return nil, domain.Upload{}, false
	}
	if header.Size > limit {
		_ = file.Close()
		lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation, "File too large").WriteError(w)
		return nil, domain.Upload{}, false
	}

	return file, domain.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, true
}

// HandleImage godoc
//
//	@Summary		Upload a course image
//	@Tags			Uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	lmsapi.ImageUploadResponse
//	@Failure		400		{object}	lmsapi.APIError
//	@Failure		403		{object}	lmsapi.APIError
//	@Failure		500		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/course-images [post].
func (h *UploadHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	file, up, ok := h.formFile(w, r, "image", "No image uploaded")
	if !ok {
		return
	}
	defer file.Close()

	obj, err := h.UploadService.UploadCourseImage(r.Context(), up)
	if err != nil {
		writeError(w, r, err, "Image upload failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.ImageUploadResponse{ImageURL: obj.URL})
}

// HandlePDF godoc
//
//	@Summary		Upload a course PDF
//	@Description	Only application/pdf files up to 10MB are accepted.
//	@Tags			Uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			pdf	formData	file	true	"PDF file"
//	@Success		200	{object}	lmsapi.PDFUploadResponse
//	@Failure		400	{object}	lmsapi.APIError
//	@Failure		403	{object}	lmsapi.APIError
//	@Failure		500	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/course-pdfs [post].
func (h *UploadHandler) HandlePDF(w http.ResponseWriter, r *http.Request) {
	file, up, ok := h.formFile(w, r, "pdf", "No PDF uploaded")
	if !ok {
		return
	}
	defer file.Close()

	obj, err := h.UploadService.UploadCoursePDF(r.Context(), up)
	if err != nil {
		writeError(w, r, err, "PDF upload failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.PDFUploadResponse{
		PDFURL:   obj.URL,
		FileName: obj.Name,
		Size:     obj.Size,
	})
}
