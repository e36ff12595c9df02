package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"potager/entities"
	"potager/pkg/apperr"
)

const userKey = "user"

type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*entities.User, error)
}

// RequireUser resolves the bearer token to a user and stores it on the context.
// Missing, malformed, expired or revoked credentials all end in 401.
func RequireUser(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return apperr.Unauthorized("Not authenticated")
			}
			u, err := a.Authenticate(c.Request().Context(), strings.TrimSpace(raw))
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return err
			}
			c.Set(userKey, u)
			return next(c)
		}
	}
}

// RequirePremium must run after RequireUser.
func RequirePremium() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil || !u.IsPremium {
				return apperr.Forbidden("Premium subscription required for this feature")
			}
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireUser.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil || !u.IsAdmin {
				return apperr.Forbidden("Admin access required")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user set by RequireUser, or nil.
func CurrentUser(c echo.Context) *entities.User {
	u, _ := c.Get(userKey).(*entities.User)
	return u
}
