package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maan-homes/accounts-api/internal/api/handler"
	"github.com/maan-homes/accounts-api/internal/core/domain"
	"github.com/maan-homes/accounts-api/internal/core/ports"
	"github.com/maan-homes/accounts-api/internal/core/service"
)

func issueCookie(t *testing.T, tokens ports.SessionTokens, accountID, userType string) *http.Cookie {
	t.Helper()
	token, err := tokens.Issue(accountID, userType)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return &http.Cookie{Name: "token", Value: token}
}

func runAuth(tokens ports.SessionTokens, cookie *http.Cookie) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }
	return c, Auth(tokens)(next)(c)
}

func TestAuth_MissingCookie(t *testing.T) {
	tokens := service.NewSessionTokenIssuer("secret", time.Hour)

	_, err := runAuth(tokens, nil)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "Unauthorized" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuth_EmptyCookie(t *testing.T) {
	tokens := service.NewSessionTokenIssuer("secret", time.Hour)

	_, err := runAuth(tokens, &http.Cookie{Name: "token", Value: ""})

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := service.NewSessionTokenIssuer("secret", time.Hour)

	_, err := runAuth(tokens, &http.Cookie{Name: "token", Value: "not-a-token"})

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "Invalid token" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	issuer := service.NewSessionTokenIssuer("secret", -time.Minute)
	cookie := issueCookie(t, issuer, "user_1", domain.RoleBuyer)

	verifier := service.NewSessionTokenIssuer("secret", time.Hour)
	_, err := runAuth(verifier, cookie)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := service.NewSessionTokenIssuer("secret", time.Hour)
	cookie := issueCookie(t, tokens, "user_1", domain.RoleOwner)

	c, err := runAuth(tokens, cookie)
	if err != nil {
		t.Fatalf("auth: %v", err)
	}
	if got, _ := c.Get(handler.CtxAccountID).(string); got != "user_1" {
		t.Fatalf("account id not injected, got %q", got)
	}
	if got, _ := c.Get(handler.CtxUserType).(string); got != domain.RoleOwner {
		t.Fatalf("user type not injected, got %q", got)
	}
}

func runAdminOnly(userType string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userType != "" {
		c.Set(handler.CtxUserType, userType)
	}

	next := func(c echo.Context) error { return nil }
	return AdminOnly()(next)(c)
}

func TestAdminOnly(t *testing.T) {
	cases := []struct {
		userType string
		allowed  bool
	}{
		{domain.RoleAdmin, true},
		{domain.RoleSuperAdmin, true},
		{domain.RoleBuyer, false},
		{domain.RoleOwner, false},
		{domain.RoleAgent, false},
		{"", false},
	}

	for _, tc := range cases {
		err := runAdminOnly(tc.userType)
		if tc.allowed {
			if err != nil {
				t.Fatalf("role %q: expected pass, got %v", tc.userType, err)
			}
			continue
		}
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("role %q: expected 401, got %v", tc.userType, err)
		}
	}
}
