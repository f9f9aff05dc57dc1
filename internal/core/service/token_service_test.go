package service

import (
	"errors"
	"testing"
	"time"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", DefaultTokenTTL)

	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", claims.UserID)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected a token id")
	}

	wantExpiry := time.Now().Add(DefaultTokenTTL)
	if d := claims.ExpiresAt.Sub(wantExpiry); d < -time.Minute || d > time.Minute {
		t.Fatalf("expiry off by %v", d)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", DefaultTokenTTL).Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenService("secret-b", DefaultTokenTTL).Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService("secret", DefaultTokenTTL)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("secret", DefaultTokenTTL).WithClock(func() time.Time { return issued })

	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Still valid one hour before the 30-day expiry.
	svc.WithClock(func() time.Time { return issued.Add(DefaultTokenTTL - time.Hour) })
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected valid before expiry, got %v", err)
	}

	// Rejected once the clock skips past 30 days.
	svc.WithClock(func() time.Time { return issued.Add(DefaultTokenTTL + time.Hour) })
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TokenIDsAreUnique(t *testing.T) {
	svc := NewTokenService("secret", DefaultTokenTTL)

	a, _ := svc.Issue("user-1")
	b, _ := svc.Issue("user-1")

	ca, err := svc.Verify(a)
	if err != nil {
		t.Fatalf("verify a: %v", err)
	}
	cb, err := svc.Verify(b)
	if err != nil {
		t.Fatalf("verify b: %v", err)
	}
	if ca.TokenID == cb.TokenID {
		t.Fatalf("expected distinct token ids, both %s", ca.TokenID)
	}
}
