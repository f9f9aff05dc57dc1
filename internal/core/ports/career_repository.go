package ports

import (
	"context"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

// CareerRepository defines the persistence interface for job postings.
// Lookup and delete return domain.ErrCareerNotFound when no document
// matches the id.
type CareerRepository interface {
	FindAll(ctx context.Context) ([]domain.Career, error)
	FindByID(ctx context.Context, id string) (*domain.Career, error)
	Create(ctx context.Context, career *domain.Career) (*domain.Career, error)
	Update(ctx context.Context, career *domain.Career) error
	Delete(ctx context.Context, id string) error
}
