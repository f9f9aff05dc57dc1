package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

type stubCareerService struct {
	careers []domain.Career
	created *domain.Career
	updated *domain.Career
	err     error

	lastInput ports.CareerInput
	deletedID string
}

func (s *stubCareerService) List(_ context.Context) ([]domain.Career, error) {
	return s.careers, s.err
}

func (s *stubCareerService) Create(_ context.Context, input ports.CareerInput) (*domain.Career, error) {
	s.lastInput = input
	return s.created, s.err
}

func (s *stubCareerService) Update(_ context.Context, _ string, input ports.CareerInput) (*domain.Career, error) {
	s.lastInput = input
	return s.updated, s.err
}

func (s *stubCareerService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

type stubApplicationService struct {
	err       error
	lastInput ports.ApplicationInput
	called    bool
}

func (s *stubApplicationService) Apply(_ context.Context, input ports.ApplicationInput) error {
	s.called = true
	s.lastInput = input
	return s.err
}

// multipartRequest builds a multipart form with the given fields and files.
// Each file sets an explicit Content-Type header on its part, which is what
// the upload validation inspects.
func multipartRequest(t *testing.T, target string, fields map[string]string, files []struct {
	field, filename, contentType, content string
}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte(f.content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func newMultipartContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCareerHandler_List(t *testing.T) {
	svc := &stubCareerService{careers: []domain.Career{{ID: "c1", Title: "Backend Engineer"}}}
	h := NewCareerHandler(svc, &stubApplicationService{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/careers", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 1 || body[0]["title"] != "Backend Engineer" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCareerHandler_Create(t *testing.T) {
	svc := &stubCareerService{created: &domain.Career{ID: "c1", Title: "Designer", Description: "UI work"}}
	h := NewCareerHandler(svc, &stubApplicationService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/careers",
		`{"title":"Designer","description":"UI work"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.Title != "Designer" {
		t.Fatalf("input not forwarded: %+v", svc.lastInput)
	}
}

func TestCareerHandler_Create_MissingFields(t *testing.T) {
	h := NewCareerHandler(&stubCareerService{}, &stubApplicationService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/careers", `{"title":"Only title"}`)
	he := assertHTTPError(t, h.Create(c), http.StatusBadRequest)
	if he.Message != "Title and description are required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestCareerHandler_Update_NotFoundPassesThrough(t *testing.T) {
	h := NewCareerHandler(&stubCareerService{err: domain.ErrCareerNotFound}, &stubApplicationService{})

	c, _ := newJSONContext(t, http.MethodPut, "/api/careers/x", `{"title":"T","description":"D"}`)
	c.SetParamNames("id")
	c.SetParamValues("x")
	if err := h.Update(c); !errors.Is(err, domain.ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

func TestCareerHandler_Delete(t *testing.T) {
	svc := &stubCareerService{}
	h := NewCareerHandler(svc, &stubApplicationService{})

	c, rec := newJSONContext(t, http.MethodDelete, "/api/careers/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if svc.deletedID != "c1" {
		t.Fatalf("expected delete of c1, got %q", svc.deletedID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCareerHandler_Apply(t *testing.T) {
	apps := &stubApplicationService{}
	h := NewCareerHandler(&stubCareerService{}, apps)

	req := multipartRequest(t, "/api/careers/apply",
		map[string]string{"jobTitle": "Backend Engineer", "name": "Alice", "email": "alice@x.com"},
		[]struct{ field, filename, contentType, content string }{
			{"resume", "cv.pdf", "application/pdf", "%PDF-1.4"},
		})
	c, rec := newMultipartContext(t, req)

	if err := h.Apply(c); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if apps.lastInput.Name != "Alice" || apps.lastInput.JobTitle != "Backend Engineer" {
		t.Fatalf("fields not forwarded: %+v", apps.lastInput)
	}
	if apps.lastInput.Resume.Filename != "cv.pdf" || apps.lastInput.Resume.ContentType != "application/pdf" {
		t.Fatalf("resume not forwarded: %+v", apps.lastInput.Resume)
	}
}

func TestCareerHandler_Apply_MissingFields(t *testing.T) {
	h := NewCareerHandler(&stubCareerService{}, &stubApplicationService{})

	req := multipartRequest(t, "/api/careers/apply",
		map[string]string{"name": "Alice"}, nil)
	c, _ := newMultipartContext(t, req)

	he := assertHTTPError(t, h.Apply(c), http.StatusBadRequest)
	if he.Message != "Name and email are required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestCareerHandler_Apply_MissingResume(t *testing.T) {
	h := NewCareerHandler(&stubCareerService{}, &stubApplicationService{})

	req := multipartRequest(t, "/api/careers/apply",
		map[string]string{"name": "Alice", "email": "alice@x.com"}, nil)
	c, _ := newMultipartContext(t, req)

	he := assertHTTPError(t, h.Apply(c), http.StatusBadRequest)
	if he.Message != "Please upload a resume" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestCareerHandler_Apply_RejectsWrongType(t *testing.T) {
	apps := &stubApplicationService{}
	h := NewCareerHandler(&stubCareerService{}, apps)

	req := multipartRequest(t, "/api/careers/apply",
		map[string]string{"name": "Alice", "email": "alice@x.com"},
		[]struct{ field, filename, contentType, content string }{
			{"resume", "cv.exe", "application/octet-stream", "MZ"},
		})
	c, _ := newMultipartContext(t, req)

	he := assertHTTPError(t, h.Apply(c), http.StatusBadRequest)
	if he.Message != "Only PDF and Word documents are allowed" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
	if apps.called {
		t.Fatalf("service invoked despite rejected resume")
	}
}

func TestCareerHandler_Apply_ServiceFailurePassesThrough(t *testing.T) {
	uploadErr := errors.New("bucket unreachable")
	h := NewCareerHandler(&stubCareerService{}, &stubApplicationService{err: uploadErr})

	req := multipartRequest(t, "/api/careers/apply",
		map[string]string{"name": "Alice", "email": "alice@x.com"},
		[]struct{ field, filename, contentType, content string }{
			{"resume", "cv.pdf", "application/pdf", "%PDF-1.4"},
		})
	c, _ := newMultipartContext(t, req)

	if err := h.Apply(c); !errors.Is(err, uploadErr) {
		t.Fatalf("expected upload error, got %v", err)
	}
}
