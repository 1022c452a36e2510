package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "token"

// CookiePolicy controls the attributes of the session cookie. In production
// the cookie is Secure with SameSite=None so the browser sends it from the
// separately-hosted frontend; in development it stays Lax over plain HTTP.
type CookiePolicy struct {
	Production bool
	TTL        time.Duration
}

func (p CookiePolicy) set(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(p.TTL),
		HttpOnly: true,
		Secure:   p.Production,
		SameSite: http.SameSiteLaxMode,
	}
	if p.Production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	c.SetCookie(cookie)
}

// clear overwrites the session cookie with an empty, already-expired value.
// The token itself stays valid until its natural expiry; see the session
// token issuer.
func (p CookiePolicy) clear(c echo.Context) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Production,
		SameSite: http.SameSiteLaxMode,
	}
	if p.Production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	c.SetCookie(cookie)
}
