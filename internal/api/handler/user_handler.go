package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maan-homes/accounts-api/internal/core/domain"
	"github.com/maan-homes/accounts-api/internal/core/ports"
)

// UserHandler handles the user account endpoints.
type UserHandler struct {
	service ports.UserService
	cookies CookiePolicy
}

func NewUserHandler(service ports.UserService, cookies CookiePolicy) *UserHandler {
	return &UserHandler{service: service, cookies: cookies}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Registration details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      500   {object}  Response
// @Router       /v1/user/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Number:   req.Number,
		UserType: req.UserType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return Fail(c, http.StatusBadRequest, "User already exists")
		}
		return err
	}

	return OK(c, http.StatusCreated, "User registered successfully", registerUserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Number:   user.Number,
		UserType: user.UserType,
	})
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Router       /v1/user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return Fail(c, http.StatusBadRequest, "Invalid email or password")
		}
		return err
	}

	h.cookies.set(c, token)

	return OK(c, http.StatusOK, "Login successful", loginUserResponse{
		UserType: user.UserType,
		UserName: user.UserName,
		Email:    user.Email,
	})
}

// ForgotPassword issues a reset secret and emails the reset link.
//
// @Summary      Request a password reset email
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  Response
// @Failure      404   {object}  Response
// @Router       /v1/user/forgot [post]
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}

	return OK(c, http.StatusOK, "Password reset email sent successfully", nil)
}

// ResetPassword consumes a reset secret and installs the new password.
//
// @Summary      Reset the password with a one-time secret
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Reset secret from the email link"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      200    {object}  Response
// @Failure      400    {object}  Response
// @Router       /v1/user/reset/{token} [post]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.service.ResetPassword(c.Request().Context(), c.Param("token"), req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidResetToken) {
			return Fail(c, http.StatusBadRequest, "Invalid token")
		}
		return err
	}

	return OK(c, http.StatusOK, "Password reset successfully", nil)
}

// Update applies a partial profile update.
//
// @Summary      Update a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Router       /v2/user/update/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.empty() {
		return Fail(c, http.StatusBadRequest, "At least one field is required to update")
	}
	if err := c.Validate(&req); err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UserUpdate{
		UserName: req.UserName,
		Email:    req.Email,
		Number:   req.Number,
		UserType: req.UserType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Fail(c, http.StatusNotFound, "User not found")
		}
		if errors.Is(err, domain.ErrAccountExists) {
			return Fail(c, http.StatusBadRequest, "Email already in use")
		}
		return err
	}

	return OK(c, http.StatusOK, "User updated successfully", user)
}

// Delete permanently removes a user account.
//
// @Summary      Delete a user
// @Tags         user
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /v2/user/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}
	return OK(c, http.StatusOK, "User deleted successfully", nil)
}

// Logout expires the session cookie.
//
// @Summary      Logout
// @Tags         user
// @Produce      json
// @Success      200  {object}  Response
// @Router       /v2/user/logout [get]
func (h *UserHandler) Logout(c echo.Context) error {
	h.cookies.clear(c)
	return OK(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the caller's own profile.
//
// @Summary      Current user profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /v2/user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return Fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}

	return OK(c, http.StatusOK, "User profile", user)
}
