package ports

import (
	"context"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

// ProjectRepository defines the persistence interface for showcases.
// Lookup and delete return domain.ErrProjectNotFound when no document
// matches the id.
type ProjectRepository interface {
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
}
