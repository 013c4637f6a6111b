package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tutorhub/tutoring-system/internal/api/metrics"
	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// TokenVerifier checks an access token and returns the user id it carries.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// UserLoader resolves the authenticated user from storage.
type UserLoader interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth validates the bearer token, loads the user behind it, and injects the
// user and role into context. A token whose user no longer exists is rejected
// the same way as a forged one.
func Auth(tokens TokenVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set("user", user)
			c.Set("role", string(user.Role))

			return next(c)
		}
	}
}
