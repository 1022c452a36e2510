package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maan-homes/accounts-api/internal/api/metrics"
	"github.com/maan-homes/accounts-api/internal/core/domain"
	"github.com/maan-homes/accounts-api/internal/core/ports"
)

// AdminService implements the admin credential lifecycle. Admins have no
// self-service password reset; a superAdmin re-creates the account instead.
type AdminService struct {
	repo     ports.AdminRepository
	sessions ports.SessionTokens
	logger   zerolog.Logger
}

func NewAdminService(repo ports.AdminRepository, sessions ports.SessionTokens, logger zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, sessions: sessions, logger: logger}
}

// Register stores a new admin account. The loginKey gate has already been
// passed at the transport layer; the role always starts as admin.
func (s *AdminService) Register(ctx context.Context, in ports.RegisterAdminInput) (*domain.Admin, error) {
	email := normalize(in.Email)

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		Name:         normalize(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Number:       strings.TrimSpace(in.Number),
		UserType:     domain.RoleAdmin,
		ProfilePic:   in.ProfilePic,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues("admin").Inc()
	return created, nil
}

// Login verifies the credentials and issues a session token, with the same
// indistinguishable failure as user login.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, normalize(email))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(admin.ID, admin.UserType)
	if err != nil {
		return "", nil, err
	}
	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()

	return token, admin, nil
}

// Update applies a partial profile update.
func (s *AdminService) Update(ctx context.Context, id string, update ports.AdminUpdate) (*domain.Admin, error) {
	if update.Name != nil {
		*update.Name = normalize(*update.Name)
	}
	if update.Email != nil {
		*update.Email = normalize(*update.Email)
	}
	return s.repo.Update(ctx, id, update)
}

// Delete permanently removes the account.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Profile returns the caller's own record.
func (s *AdminService) Profile(ctx context.Context, id string) (*domain.Admin, error) {
	return s.repo.FindByID(ctx, id)
}
