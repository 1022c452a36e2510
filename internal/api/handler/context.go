package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys populated by the Auth middleware.
const (
	CtxAccountID = "account_id"
	CtxUserType  = "user_type"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing account id means the guard
// did not run on this route, which is a wiring bug surfaced as 401 rather
// than a nil-deref later.
func ctxIdentity(c echo.Context) (accountID, userType string, err error) {
	accountID, _ = c.Get(CtxAccountID).(string)
	if accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userType, _ = c.Get(CtxUserType).(string)
	return accountID, userType, nil
}
