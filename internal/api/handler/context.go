package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikan-studio/portfolio-api/internal/api/middleware"
	"github.com/mikan-studio/portfolio-api/internal/core/domain"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
)

// currentUser extracts the identity injected by the Auth middleware.
// Presence proves the gate ran; a handler behind the gate receiving no
// user is a wiring error and is rejected, not tolerated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// currentClaims extracts the verified token claims for the logout path.
func currentClaims(c echo.Context) (*ports.TokenClaims, error) {
	claims, _ := c.Get(middleware.ContextClaimsKey).(*ports.TokenClaims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
