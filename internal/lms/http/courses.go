package http

import (
	"net/http"

	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
)

type CourseHandler struct {
	CourseService *service.CourseService
}

// HandleList godoc
//
//	@Summary		List courses
//	@Description	Admins see every course. Everyone else sees the available courses, or every
//	@Description	course when none is marked available.
//	@Tags			Courses
//	@Produce		json
//	@Success		200	{array}		lmsapi.Course
//	@Failure		500	{object}	lmsapi.APIError
//	@Router			/api/course [get].
func (h *CourseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	c, ok := httpx.ClaimsFromContext(r.Context())
	h.list(w, r, ok && c.IsAdmin())
}

// HandleListAll godoc
//
//	@Summary		List every course, available or not
//	@Tags			Courses
//	@Produce		json
//	@Success		200	{array}		lmsapi.Course
//	@Failure		401	{object}	lmsapi.APIError
//	@Failure		403	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/course/admin/all [get].
func (h *CourseHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *CourseHandler) list(w http.ResponseWriter, r *http.Request, all bool) {
	courses, err := h.CourseService.List(r.Context(), all)
	if err != nil {
		writeError(w, r, err, "Failed to get courses")
		return
	}

	out := make([]lmsapi.Course, len(courses))
	for i, c := range courses {
		out[i] = toCourse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get a course
//	@Tags			Courses
//	@Produce		json
//	@Param			id	path		string	true	"Course ID"
//	@Success		200	{object}	lmsapi.Course
//	@Failure		404	{object}	lmsapi.APIError
//	@Router			/api/course/{id} [get].
func (h *CourseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.CourseService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "Failed to get course")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCourse(c))
}

// HandleCreate godoc
//
//	@Summary		Create a course
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			body	body		lmsapi.CourseRequest	true	"Course"
//	@Success		201		{object}	lmsapi.CourseResponse
//	@Failure		400		{object}	lmsapi.APIError
//	@Failure		403		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/course/save [post].
func (h *CourseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req lmsapi.CourseRequest
	if !decode(w, r, &req) {
		return
	}
	if errs := req.Validate(true); errs != nil {
		invalidFields(w, errs)
		return
	}

	c, err := h.CourseService.Create(r.Context(), toCoursePatch(req))
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, lmsapi.CourseResponse{Message: "Course created", Course: toCourse(c)})
}

// HandleUpdate godoc
//
//	@Summary		Update a course
//	@Description	Only the fields present in the body change.
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Course ID"
//	@Param			body	body		lmsapi.CourseRequest	true	"Fields to change"
//	@Success		200		{object}	lmsapi.CourseResponse
//	@Failure		400		{object}	lmsapi.APIError
//	@Failure		404		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/course/update/{id} [put].
func (h *CourseHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req lmsapi.CourseRequest
	if !decode(w, r, &req) {
		return
	}
	if errs := req.Validate(false); errs != nil {
		invalidFields(w, errs)
		return
	}

	c, err := h.CourseService.Update(r.Context(), r.PathValue("id"), toCoursePatch(req))
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.CourseResponse{Message: "Course updated", Course: toCourse(c)})
}

// HandleDelete godoc
//
//	@Summary		Delete a course
//	@Tags			Courses
//	@Produce		json
//	@Param			id	path		string	true	"Course ID"
//	@Success		200	{object}	lmsapi.MessageResponse
//	@Failure		404	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/course/delete/{id} [delete].
func (h *CourseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CourseService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.MessageResponse{Message: "Course deleted"})
}
