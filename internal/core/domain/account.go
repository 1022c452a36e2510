package domain

import (
	"errors"
	"time"
)

// User roles.
const (
	RoleBuyer = "buyer"
	RoleOwner = "owner"
	RoleAgent = "agent"
)

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superAdmin"
)

var ErrAccountExists = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidResetToken = errors.New("invalid reset token")

// ValidUserRole reports whether role is one of the user account roles.
func ValidUserRole(role string) bool {
	return role == RoleBuyer || role == RoleOwner || role == RoleAgent
}

// ValidAdminRole reports whether role is one of the elevated roles.
func ValidAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// User models a marketplace account (buyer, owner or agent).
//
// PasswordHash is the only persisted password form and is never serialized.
// ResetToken holds the bcrypt digest of a pending reset secret; it is only
// meaningful while ResetTokenExpiry is in the future, and the pair is always
// set and cleared together.
type User struct {
	ID               string    `json:"id"`
	UserName         string    `json:"userName"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Number           string    `json:"number"`
	UserType         string    `json:"userType"`
	ProfilePic       string    `json:"profilepic,omitempty"`
	Credits          int       `json:"credits"`
	Rating           float64   `json:"rating"`
	PropertyIDs      []string  `json:"properties,omitempty"`
	CartIDs          []string  `json:"cart,omitempty"`
	ResetToken       string    `json:"-"`
	ResetTokenExpiry time.Time `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// HasPendingReset reports whether the user carries a reset digest that is
// still within its validity window at the given instant.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetToken != "" && now.Before(u.ResetTokenExpiry)
}

// Admin models a back-office account.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Number       string    `json:"number"`
	UserType     string    `json:"userType"`
	ProfilePic   string    `json:"profileImg,omitempty"`
	PropertyIDs  []string  `json:"properties,omitempty"`
	CartIDs      []string  `json:"cart,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
