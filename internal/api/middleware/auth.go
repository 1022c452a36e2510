package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maan-homes/accounts-api/internal/api/handler"
	"github.com/maan-homes/accounts-api/internal/core/domain"
	"github.com/maan-homes/accounts-api/internal/core/ports"
)

// sessionCookieName must match the cookie the login handlers set.
const sessionCookieName = "token"

// Auth verifies the session cookie and injects the decoded identity into the
// echo context. The token is the source of truth for identity and role on
// every request; no database lookup happens here.
func Auth(tokens ports.SessionTokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(handler.CtxAccountID, claims.AccountID)
			c.Set(handler.CtxUserType, claims.UserType)

			return next(c)
		}
	}
}

// AdminOnly gates a route group to elevated roles. It runs after Auth and
// reads the decoded role from the context.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(handler.CtxUserType).(string)
			if !domain.ValidAdminRole(role) {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin access required")
			}
			return next(c)
		}
	}
}
