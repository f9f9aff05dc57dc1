package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	// Mirrors the store's unique email index.
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("id-%d", r.nextID)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := cloneUser(u)
			found.PasswordHash = ""
			return found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		found := cloneUser(u)
		found.PasswordHash = ""
		out = append(out, *found)
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubDenylist struct {
	revoked map[string]time.Duration
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	d.revoked[tokenID] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, nil
}

func newTestAuthService(repo *stubUserRepo, denylist ports.TokenDenylist) *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, denylist, zerolog.Nop())
}

func TestAuthService_Register_BootstrapsAdminOnEmptyStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubDenylist())

	// The submitted payload is ignored entirely on the first call.
	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "p",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if result.Email != "admin@mikan.com" {
		t.Fatalf("expected bootstrap email, got %s", result.Email)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", result.Role)
	}
	if result.Name != "Admin User" {
		t.Fatalf("expected bootstrap name, got %s", result.Name)
	}
	if result.Message == "" {
		t.Fatalf("expected bootstrap message")
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}

	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("expected exactly one user after bootstrap, got %d", n)
	}

	// The bootstrap password is the fixed one, not the submitted one.
	admin := repo.users["admin@mikan.com"]
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")) != nil {
		t.Fatalf("bootstrap password hash does not match fixed credentials")
	}
}

func TestAuthService_Register_SecondRegistrationHonoursPayload(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubDenylist())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "p"}); err != nil {
		t.Fatalf("bootstrap register: %v", err)
	}

	result, err := svc.Register(context.Background(), ports.RegisterInput{Name: "B", Email: "b@x.com", Password: "q"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if result.Email != "b@x.com" || result.Name != "B" {
		t.Fatalf("unexpected user: %+v", result)
	}
	if result.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, result.Role)
	}
	if result.Message != "" {
		t.Fatalf("bootstrap message leaked into a regular registration")
	}
}

func TestAuthService_Register_SubmittedRoleIsKept(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubDenylist())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "C",
		Email:    "c@x.com",
		Password: "r",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("expected submitted role to be kept, got %q", result.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubDenylist())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "B", Email: "b@x.com", Password: "q"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	before, _ := repo.Count(context.Background())
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "B2", Email: "b@x.com", Password: "z"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	after, _ := repo.Count(context.Background())
	if before != after {
		t.Fatalf("duplicate registration changed user count: %d -> %d", before, after)
	}
}

func TestAuthService_Register_InsertRaceSurfacesAsDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubDenylist())

	// Simulate the losing side of a concurrent first registration: the
	// store is populated between the count and the insert.
	repo.users["admin@mikan.com"] = &domain.User{ID: "id-0", Email: "admin@mikan.com", Role: domain.RoleAdmin}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "B", Email: "admin@mikan.com", Password: "q"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubDenylist())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	reg, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Carol", Email: "carol@x.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.ID != reg.ID {
		t.Fatalf("expected id %s, got %s", reg.ID, result.ID)
	}

	// The issued token must reference the stored user.
	claims, err := svc.tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.UserID != reg.ID {
		t.Fatalf("token subject %s does not match user %s", claims.UserID, reg.ID)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubDenylist())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "Dave", Email: "dave@x.com", Password: "goodpass"})

	_, errWrongPass := svc.Login(context.Background(), "dave@x.com", "badpass")
	_, errUnknown := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if errWrongPass.Error() != errUnknown.Error() {
		t.Fatalf("mismatching messages leak enumeration: %q vs %q", errWrongPass, errUnknown)
	}
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubDenylist())

	if _, err := svc.Login(context.Background(), "", "p"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	denylist := newStubDenylist()
	svc := newTestAuthService(newStubUserRepo(), denylist)

	claims := &ports.TokenClaims{
		UserID:    "id-1",
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("logout: %v", err)
	}

	ttl, ok := denylist.revoked["jti-1"]
	if !ok {
		t.Fatalf("token not revoked")
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected denylist ttl %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	denylist := newStubDenylist()
	svc := newTestAuthService(newStubUserRepo(), denylist)

	claims := &ports.TokenClaims{
		TokenID:   "jti-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(denylist.revoked) != 0 {
		t.Fatalf("expired token should not be denylisted")
	}
}
