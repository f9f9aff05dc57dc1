package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// CareerHandler exposes job posting CRUD plus the public application
// endpoint.
type CareerHandler struct {
	careers      ports.CareerService
	applications ports.ApplicationService
}

func NewCareerHandler(careers ports.CareerService, applications ports.ApplicationService) *CareerHandler {
	return &CareerHandler{careers: careers, applications: applications}
}

// List handles GET /api/careers. Public.
//
// @Summary      List job postings
// @Tags         careers
// @Produce      json
// @Success      200  {array}   domain.Career
// @Failure      500  {object}  messageResponse
// @Router       /api/careers [get]
func (h *CareerHandler) List(c echo.Context) error {
	careers, err := h.careers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, careers)
}

// Create handles POST /api/careers. Requires authentication.
//
// @Summary      Create a job posting
// @Tags         careers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      careerRequest  true  "Posting fields"
// @Success      201   {object}  domain.Career
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/careers [post]
func (h *CareerHandler) Create(c echo.Context) error {
	var req careerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and description are required")
	}

	career, err := h.careers.Create(c.Request().Context(), ports.CareerInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, career)
}

// Update handles PUT /api/careers/:id. Requires authentication.
//
// @Summary      Update a job posting
// @Tags         careers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Career id"
// @Param        body  body      careerRequest  true  "Posting fields"
// @Success      200   {object}  domain.Career
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/careers/{id} [put]
func (h *CareerHandler) Update(c echo.Context) error {
	var req careerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and description are required")
	}

	career, err := h.careers.Update(c.Request().Context(), c.Param("id"), ports.CareerInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, career)
}

// Delete handles DELETE /api/careers/:id. Requires authentication.
//
// @Summary      Delete a job posting
// @Tags         careers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Career id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/careers/{id} [delete]
func (h *CareerHandler) Delete(c echo.Context) error {
	if err := h.careers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Career deleted successfully"})
}

// Apply handles POST /api/careers/apply. Public; multipart form with
// jobTitle/name/email fields and a resume file (PDF or Word, max 5MB).
//
// @Summary      Apply for a job posting
// @Tags         careers
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobTitle  formData  string  false  "Position applied for"
// @Param        name      formData  string  true   "Applicant name"
// @Param        email     formData  string  true   "Applicant email"
// @Param        resume    formData  file    true   "Resume (PDF or Word)"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/careers/apply [post]
func (h *CareerHandler) Apply(c echo.Context) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	if name == "" || email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name and email are required")
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please upload a resume")
	}

	resume, closeResume, err := openUpload(fh, isResumeType, "Only PDF and Word documents are allowed")
	if err != nil {
		return err
	}
	defer closeResume()

	err = h.applications.Apply(c.Request().Context(), ports.ApplicationInput{
		JobTitle: c.FormValue("jobTitle"),
		Name:     name,
		Email:    email,
		Resume:   resume,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Application submitted successfully"})
}
