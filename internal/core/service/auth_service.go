package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mikan-studio/portfolio-api/internal/api/metrics"
	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// Fixed bootstrap credentials: the very first account ever created in an
// empty store is always this admin, regardless of the submitted payload.
const (
	bootstrapName     = "Admin User"
	bootstrapEmail    = "admin@mikan.com"
	bootstrapPassword = "admin123"
)

// AuthService implements registration (with first-run admin bootstrap),
// login and logout.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	denylist ports.TokenDenylist
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, denylist ports.TokenDenylist, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		denylist: denylist,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates an account. On an empty store the submitted payload is
// ignored and the fixed bootstrap admin is created instead; this can fire
// at most once per store lifetime. The count-then-create race between two
// concurrent first registrations is settled by the unique email index: the
// losing insert surfaces as ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return s.bootstrapAdmin(ctx)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user, err := s.createUser(ctx, input.Name, input.Email, input.Password, role)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	metrics.RegistrationsTotal.WithLabelValues("user").Inc()

	return &ports.AuthResult{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

// bootstrapAdmin creates the fixed first admin account.
func (s *AuthService) bootstrapAdmin(ctx context.Context) (*ports.AuthResult, error) {
	user, err := s.createUser(ctx, bootstrapName, bootstrapEmail, bootstrapPassword, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("bootstrap admin created")
	metrics.RegistrationsTotal.WithLabelValues("bootstrap").Inc()

	return &ports.AuthResult{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Token:   token,
		Message: "Admin user created successfully",
	}, nil
}

func (s *AuthService) createUser(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login validates credentials and returns a fresh token. Unknown email and
// wrong password produce the same ErrInvalidCredentials so a caller cannot
// tell which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	return &ports.AuthResult{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

// Logout denylists the presented token until its natural expiry. Revoking
// an already-revoked token is a no-op.
func (s *AuthService) Logout(ctx context.Context, claims *ports.TokenClaims) error {
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.TokenID, ttl)
}

// ListUsers returns all accounts, password hashes excluded by the
// repository contract.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}
