package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// maxUploadSize bounds individual uploaded files (resumes and images).
const maxUploadSize = 5 << 20

// resumeContentTypes lists the document types accepted for resumes.
var resumeContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// openUpload validates the file header and opens the part for streaming.
// The returned closer must be called once the service has consumed the
// reader.
func openUpload(fh *multipart.FileHeader, allow func(contentType string) bool, typeErr string) (ports.FileInput, func(), error) {
	if fh.Size > maxUploadSize {
		return ports.FileInput{}, nil, echo.NewHTTPError(http.StatusBadRequest, "file too large (max 5MB)")
	}

	contentType := fh.Header.Get("Content-Type")
	if !allow(contentType) {
		return ports.FileInput{}, nil, echo.NewHTTPError(http.StatusBadRequest, typeErr)
	}

	f, err := fh.Open()
	if err != nil {
		return ports.FileInput{}, nil, err
	}

	return ports.FileInput{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Reader:      f,
	}, func() { _ = f.Close() }, nil
}

func isResumeType(contentType string) bool {
	_, ok := resumeContentTypes[contentType]
	return ok
}

func isImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
