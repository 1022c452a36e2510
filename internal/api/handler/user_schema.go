package handler

// Request types own the validation tags; fields are declared in the order
// the rules should fire.

type registerUserRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Number   string `json:"number"   validate:"required,mobile"`
	UserType string `json:"userType" validate:"required,oneof=buyer owner agent"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// updateUserRequest carries optional fields; provided values are still
// shape-checked.
type updateUserRequest struct {
	UserName *string `json:"userName" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Number   *string `json:"number"   validate:"omitempty,mobile"`
	UserType *string `json:"userType" validate:"omitempty,oneof=buyer owner agent"`
}

func (r updateUserRequest) empty() bool {
	return r.UserName == nil && r.Email == nil && r.Number == nil && r.UserType == nil
}

// Response-only types owned by the transport layer. The password never has a
// field to leak through.

type registerUserResponse struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Number   string `json:"number"`
	UserType string `json:"userType"`
}

type loginUserResponse struct {
	UserType string `json:"userType"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}
