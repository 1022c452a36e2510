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

// UserService implements the user credential lifecycle: registration, login,
// profile maintenance and the password-reset flow.
type UserService struct {
	repo        ports.UserRepository
	sessions    ports.SessionTokens
	resets      *ResetTokenIssuer
	mail        ports.MailEnqueuer
	throttle    ports.ResetThrottle
	frontendURL string
	logger      zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	sessions ports.SessionTokens,
	resets *ResetTokenIssuer,
	mail ports.MailEnqueuer,
	throttle ports.ResetThrottle,
	frontendURL string,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		sessions:    sessions,
		resets:      resets,
		mail:        mail,
		throttle:    throttle,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Register hashes the password, stores the new account and queues the welcome
// email. The email/userName are case-normalized before the write so the
// uniqueness check and the unique index see the same value.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	email := normalize(in.Email)

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserName:     normalize(in.UserName),
		Email:        email,
		PasswordHash: string(hash),
		Number:       strings.TrimSpace(in.Number),
		UserType:     in.UserType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues("user").Inc()

	s.mail.Enqueue(ports.Email{
		To:       created.Email,
		Subject:  "Welcome to Maan-Homes",
		Template: "welcome",
		Data: map[string]string{
			"name":      created.UserName,
			"loginLink": s.frontendURL + "/login",
		},
	})

	return created, nil
}

// Login verifies the credentials and issues a session token. A missing
// account and a wrong password return the same error so the response never
// confirms whether an email is registered.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalize(email))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("user", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("user", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID, user.UserType)
	if err != nil {
		return "", nil, err
	}
	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()

	return token, user, nil
}

// ForgotPassword issues a reset secret, persists its digest/expiry pair and
// queues the reset email. Repeat requests inside the throttle window succeed
// without re-issuing, so a burst of requests produces one email.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, normalize(email))
	if err != nil {
		return err
	}

	allowed, err := s.throttle.Allow(ctx, user.Email)
	if err != nil {
		// Redis being down must not block password recovery.
		s.logger.Warn().Err(err).Msg("reset throttle unavailable, proceeding")
		allowed = true
	}
	if !allowed {
		s.logger.Info().Str("email", user.Email).Msg("reset email throttled")
		metrics.PasswordResetsTotal.WithLabelValues("throttled").Inc()
		return nil
	}

	secret, digest, expiry, err := s.resets.Issue()
	if err != nil {
		return err
	}
	if err := s.repo.SetResetToken(ctx, user.ID, digest, expiry); err != nil {
		return err
	}
	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()

	s.mail.Enqueue(ports.Email{
		To:       user.Email,
		Subject:  "Reset your password",
		Template: "forgot_password",
		Data: map[string]string{
			"name":       user.UserName,
			"resetLink":  s.frontendURL + "/v1/user/reset-password/" + secret,
			"expiryTime": "15 min",
		},
	})

	return nil
}

// ResetPassword consumes a reset secret and installs the new password.
//
// The reset link carries only the secret, so the account is located by
// scanning the accounts with an unexpired reset pair and verifying the secret
// against each stored digest. The password write and the clearing of the
// reset pair happen in one document update, which makes the secret
// single-use.
func (s *UserService) ResetPassword(ctx context.Context, secret, newPassword string) error {
	now := time.Now().UTC()
	candidates, err := s.repo.FindByActiveResetToken(ctx, now)
	if err != nil {
		return err
	}

	var match *domain.User
	for _, u := range candidates {
		if s.resets.Consume(secret, u.ResetToken, u.ResetTokenExpiry) {
			match = u
			break
		}
	}
	if match == nil {
		metrics.PasswordResetsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.ResetPassword(ctx, match.ID, string(hash)); err != nil {
		return err
	}
	metrics.PasswordResetsTotal.WithLabelValues("completed").Inc()

	s.mail.Enqueue(ports.Email{
		To:       match.Email,
		Subject:  "You have successfully reset your password",
		Template: "reset_success",
		Data:     map[string]string{"name": match.UserName},
	})

	return nil
}

// Update applies a partial profile update. The password is never touched
// here, so the stored hash is carried through untouched.
func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	if update.UserName != nil {
		*update.UserName = normalize(*update.UserName)
	}
	if update.Email != nil {
		*update.Email = normalize(*update.Email)
	}
	return s.repo.Update(ctx, id, update)
}

// Delete permanently removes the account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Profile returns the caller's own record.
func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
