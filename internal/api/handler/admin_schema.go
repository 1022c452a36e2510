package handler

type registerAdminRequest struct {
	LoginKey   string `json:"loginKey"`
	Name       string `json:"name"     validate:"required"`
	Email      string `json:"email"    validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Number     string `json:"number"   validate:"required,mobile"`
	ProfilePic string `json:"profilePic"`
}

type updateAdminRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Number   *string `json:"number"   validate:"omitempty,mobile"`
	UserType *string `json:"userType" validate:"omitempty,oneof=admin superAdmin"`
}

func (r updateAdminRequest) empty() bool {
	return r.Name == nil && r.Email == nil && r.Number == nil && r.UserType == nil
}
