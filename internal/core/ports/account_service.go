package ports

import (
	"context"

	"github.com/maan-homes/accounts-api/internal/core/domain"
)

// RegisterUserInput is the validated payload for user registration.
type RegisterUserInput struct {
	UserName string
	Email    string
	Password string
	Number   string
	UserType string
}

// UserService implements the user credential lifecycle.
type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, secret, newPassword string) error
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Profile(ctx context.Context, id string) (*domain.User, error)
}

// RegisterAdminInput is the validated payload for admin registration.
// The loginKey gate is enforced at the transport layer.
type RegisterAdminInput struct {
	Name       string
	Email      string
	Password   string
	Number     string
	ProfilePic string
}

// AdminService implements the admin credential lifecycle.
type AdminService interface {
	Register(ctx context.Context, in RegisterAdminInput) (*domain.Admin, error)
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
	Update(ctx context.Context, id string, update AdminUpdate) (*domain.Admin, error)
	Delete(ctx context.Context, id string) error
	Profile(ctx context.Context, id string) (*domain.Admin, error)
}

// SessionClaims is the decoded identity carried by a session token.
type SessionClaims struct {
	AccountID string
	UserType  string
}

// SessionTokens issues and verifies stateless session tokens.
//
// Verify must fail closed: every failure mode maps to domain.ErrInvalidToken.
type SessionTokens interface {
	Issue(accountID, userType string) (string, error)
	Verify(token string) (*SessionClaims, error)
}
