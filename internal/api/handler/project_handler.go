package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// maxProjectImages bounds the number of images per submission.
const maxProjectImages = 4

// ProjectHandler exposes showcase CRUD with multipart image upload.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/projects. Public.
//
// @Summary      List showcase projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      500  {object}  messageResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/projects. Requires authentication; multipart
// form with name/description fields and up to 4 image files.
//
// @Summary      Create a showcase project
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Project name"
// @Param        description  formData  string  true   "Project description"
// @Param        images       formData  file    false  "Project images (max 4)"
// @Success      201  {object}  domain.Project
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	name := c.FormValue("name")
	description := c.FormValue("description")
	if name == "" || description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name and description are required")
	}

	images, closeImages, err := h.formImages(c)
	if err != nil {
		return err
	}
	defer closeImages()

	project, err := h.projects.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        name,
		Description: description,
		Images:      images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /api/projects/:id. Requires authentication; empty
// fields keep their stored values, new images are appended.
//
// @Summary      Update a showcase project
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Project id"
// @Param        name         formData  string  false  "Project name"
// @Param        description  formData  string  false  "Project description"
// @Param        images       formData  file    false  "Additional images (max 4)"
// @Success      200  {object}  domain.Project
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	images, closeImages, err := h.formImages(c)
	if err != nil {
		return err
	}
	defer closeImages()

	project, err := h.projects.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Images:      images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id. Requires authentication. Image
// blobs are cleaned up in the background after the document is removed.
//
// @Summary      Delete a showcase project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Project id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted successfully"})
}

// formImages collects, validates and opens the images parts. The returned
// closer releases all opened files. A request without a multipart body
// yields no images and no error.
func (h *ProjectHandler) formImages(c echo.Context) ([]ports.FileInput, func(), error) {
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, nil
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		return nil, noop, nil
	}
	if len(headers) > maxProjectImages {
		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "A maximum of 4 images is allowed")
	}

	images := make([]ports.FileInput, 0, len(headers))
	closers := make([]func(), 0, len(headers))
	closeAll := func() {
		for _, close := range closers {
			close()
		}
	}

	for _, fh := range headers {
		img, closeImg, err := openUpload(fh, isImageType, "Only image files are allowed")
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		images = append(images, img)
		closers = append(closers, closeImg)
	}

	return images, closeAll, nil
}
