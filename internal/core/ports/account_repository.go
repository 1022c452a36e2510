package ports

import (
	"context"
	"time"

	"github.com/maan-homes/accounts-api/internal/core/domain"
)

// UserUpdate carries the mutable profile fields of a partial update.
// Nil pointers mean "leave unchanged".
type UserUpdate struct {
	UserName *string
	Email    *string
	Number   *string
	UserType *string
}

// Empty reports whether no field is set.
func (u UserUpdate) Empty() bool {
	return u.UserName == nil && u.Email == nil && u.Number == nil && u.UserType == nil
}

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	// SetResetToken stores the digest/expiry pair on the account.
	SetResetToken(ctx context.Context, id, digest string, expiry time.Time) error
	// FindByActiveResetToken returns every account whose reset expiry is
	// still after now. Callers verify the candidate secret against each digest.
	FindByActiveResetToken(ctx context.Context, now time.Time) ([]*domain.User, error)
	// ResetPassword sets the new password hash and clears the reset
	// digest/expiry pair in a single document write.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

// AdminUpdate carries the mutable fields of an admin partial update.
type AdminUpdate struct {
	Name     *string
	Email    *string
	Number   *string
	UserType *string
}

// Empty reports whether no field is set.
func (u AdminUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Number == nil && u.UserType == nil
}

// AdminRepository is the persistence contract for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Update(ctx context.Context, id string, update AdminUpdate) (*domain.Admin, error)
	Delete(ctx context.Context, id string) error
}
