package ports

import (
	"context"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

// RegisterInput carries the caller-submitted registration payload. Role is
// optional and defaults to the regular user role.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned by both registration and login.
type AuthResult struct {
	ID      string
	Name    string
	Email   string
	Role    string
	Token   string
	Message string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, claims *TokenClaims) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}
