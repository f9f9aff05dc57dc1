package ports

import (
	"context"
	"io"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

// CareerInput carries the fields of a posting; both are required on create
// and update.
type CareerInput struct {
	Title       string
	Description string
}

// FileInput is an uploaded file streamed from a multipart request.
type FileInput struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ApplicationInput is a job application submitted against a posting.
type ApplicationInput struct {
	JobTitle string
	Name     string
	Email    string
	Resume   FileInput
}

type CareerService interface {
	List(ctx context.Context) ([]domain.Career, error)
	Create(ctx context.Context, input CareerInput) (*domain.Career, error)
	Update(ctx context.Context, id string, input CareerInput) (*domain.Career, error)
	Delete(ctx context.Context, id string) error
}

// ApplicationService handles career applications: resume upload to the
// blob store followed by an admin notification.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplicationInput) error
}
