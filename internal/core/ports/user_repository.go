package ports

import (
	"context"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user records.
//
// FindByEmail is the credential-lookup path and returns the password hash;
// FindByID is the auth-gate path and must leave PasswordHash empty.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
