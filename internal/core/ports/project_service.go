package ports

import (
	"context"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

// CreateProjectInput carries the showcase fields plus any images to upload.
type CreateProjectInput struct {
	Name        string
	Description string
	Images      []FileInput
}

// UpdateProjectInput applies a partial update; empty Name/Description keep
// the stored values, new images are appended.
type UpdateProjectInput struct {
	Name        string
	Description string
	Images      []FileInput
}

type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
