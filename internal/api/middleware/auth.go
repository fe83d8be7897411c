package middleware

import (
	"net/http"

	"github.com/guide4360/guide4360api/internal/auth"
	"github.com/guide4360/guide4360api/internal/config"
	"github.com/guide4360/guide4360api/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware creates a new authorization middleware. It verifies the
// session cookie on every request; a missing, invalid or expired token is
// treated identically to no session at all.
func AuthMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Missing session cookie")
			}

			claims, err := auth.VerifyToken(cookie.Value, secret)
			if err != nil {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid or expired session")
			}

			// Add session identity to context for use in handlers
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}
