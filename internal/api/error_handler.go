package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

// errorResponse is the canonical error envelope. Error carries internal
// diagnostic detail and is only populated in development mode.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors and keeps their detail out of responses
//     unless the process runs in development mode.
//   - Renders a consistent JSON envelope: {"message": "...", "error"?: "..."}.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c, development)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, errorResponse) {
	// Echo's own errors: bind failures, 404 from the router, statuses
	// set explicitly by handlers and middleware.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors map to deterministic statuses. Authorization
	// failures keep deliberately generic messages.
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, errorResponse{Message: "Please provide email and password"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, errorResponse{Message: "User already exists"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Message: "Invalid email or password"}
	case errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, errorResponse{Message: "Not authorized, token failed"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, errorResponse{Message: "User not found"}
	case errors.Is(err, domain.ErrCareerNotFound):
		return http.StatusNotFound, errorResponse{Message: "Career not found"}
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, errorResponse{Message: "Project not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	resp := errorResponse{Message: "Internal server error"}
	if development {
		resp.Error = err.Error()
	}
	return http.StatusInternalServerError, resp
}
