package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

func renderError(t *testing.T, err error, development bool) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), development)(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing credentials", domain.ErrMissingCredentials, http.StatusBadRequest, "Please provide email and password"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "User already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized, "Not authorized, token failed"},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized, "Not authorized, token failed"},
		{"token revoked", domain.ErrTokenRevoked, http.StatusUnauthorized, "Not authorized, token failed"},
		{"user not found", domain.ErrUserNotFound, http.StatusUnauthorized, "User not found"},
		{"career not found", domain.ErrCareerNotFound, http.StatusNotFound, "Career not found"},
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err, false)
			if code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, code)
			}
			if body["message"] != tc.message {
				t.Fatalf("expected message %q, got %v", tc.message, body["message"])
			}
			if _, present := body["error"]; present {
				t.Fatalf("error detail present outside development mode: %v", body)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup career"), domain.ErrCareerNotFound)

	code, body := renderError(t, wrapped, false)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped not-found, got %d", code)
	}
	if body["message"] != "Career not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "Please upload a resume"), false)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["message"] != "Please upload a resume" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_UnexpectedError_Production(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"), false)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["message"] != "Internal server error" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if _, present := body["error"]; present {
		t.Fatalf("internal detail leaked in production mode: %v", body)
	}
}

func TestErrorHandler_UnexpectedError_Development(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"), true)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "mongo: connection reset" {
		t.Fatalf("expected detail in development mode, got %v", body)
	}
}
