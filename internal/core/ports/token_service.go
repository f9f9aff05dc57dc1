package ports

import (
	"context"
	"time"
)

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Issue is a pure function of the signing secret, the input and the clock.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// TokenDenylist records revoked token IDs until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
