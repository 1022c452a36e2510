package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maan-homes/accounts-api/internal/core/domain"
	"github.com/maan-homes/accounts-api/internal/core/ports"
)

// AdminHandler handles the admin account endpoints. Registration is gated by
// the server-side loginKey rather than an existing session, so the very first
// admin can bootstrap itself.
type AdminHandler struct {
	service  ports.AdminService
	cookies  CookiePolicy
	loginKey string
}

func NewAdminHandler(service ports.AdminService, cookies CookiePolicy, loginKey string) *AdminHandler {
	return &AdminHandler{service: service, cookies: cookies, loginKey: loginKey}
}

// Register creates a new admin account.
//
// @Summary      Register a new admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      registerAdminRequest  true  "Admin details including the server loginKey"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Router       /v1/admin/register [post]
func (h *AdminHandler) Register(c echo.Context) error {
	var req registerAdminRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if h.loginKey == "" || subtle.ConstantTimeCompare([]byte(req.LoginKey), []byte(h.loginKey)) != 1 {
		return Fail(c, http.StatusUnauthorized, "Invalid login key")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	admin, err := h.service.Register(c.Request().Context(), ports.RegisterAdminInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Number:     req.Number,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return Fail(c, http.StatusBadRequest, "Admin already exists")
		}
		return err
	}

	return OK(c, http.StatusCreated, "Admin registered successfully", admin)
}

// Login authenticates an admin and sets the session cookie.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Router       /v1/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return Fail(c, http.StatusBadRequest, "Invalid email or password")
		}
		return err
	}

	h.cookies.set(c, token)

	return OK(c, http.StatusOK, "Admin login successful", admin)
}

// Update applies a partial admin profile update.
//
// @Summary      Update an admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Admin id"
// @Param        body  body      updateAdminRequest  true  "Fields to change"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Router       /v3/admin/update/{id} [patch]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.empty() {
		return Fail(c, http.StatusBadRequest, "At least one field is required to update")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	admin, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AdminUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Number:   req.Number,
		UserType: req.UserType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Fail(c, http.StatusNotFound, "Admin not found")
		}
		if errors.Is(err, domain.ErrAccountExists) {
			return Fail(c, http.StatusBadRequest, "Email already in use")
		}
		return err
	}

	return OK(c, http.StatusOK, "Admin updated successfully", admin)
}

// Delete permanently removes an admin account.
//
// @Summary      Delete an admin
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Admin id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /v3/admin/delete/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Fail(c, http.StatusNotFound, "Admin not found")
		}
		return err
	}
	return OK(c, http.StatusOK, "Admin deleted successfully", nil)
}

// Logout expires the session cookie.
//
// @Summary      Admin logout
// @Tags         admin
// @Produce      json
// @Success      200  {object}  Response
// @Router       /v3/admin/logout [get]
func (h *AdminHandler) Logout(c echo.Context) error {
	h.cookies.clear(c)
	return OK(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the caller's own admin profile.
//
// @Summary      Current admin profile
// @Tags         admin
// @Produce      json
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /v3/admin/me [get]
func (h *AdminHandler) Me(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	admin, err := h.service.Profile(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Fail(c, http.StatusNotFound, "Admin not found")
		}
		return err
	}

	return OK(c, http.StatusOK, "Admin profile", admin)
}
