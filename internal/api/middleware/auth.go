package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// Context keys under which the gate stores the authenticated identity.
const (
	ContextUserKey   = "user"
	ContextClaimsKey = "token_claims"
)

// Auth is the authentication gate. It extracts the bearer token, verifies
// it, checks the revocation denylist, loads the referenced user (password
// hash excluded) and attaches identity to the request context. A request
// proceeds past this middleware only fully verified.
func Auth(tokens ports.TokenService, users ports.UserRepository, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
			if err != nil {
				return err
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				// A token can outlive its account; that is a rejection,
				// not a server fault.
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return err
			}

			c.Set(ContextUserKey, user)
			c.Set(ContextClaimsKey, claims)

			return next(c)
		}
	}
}
