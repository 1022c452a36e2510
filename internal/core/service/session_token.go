package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/maan-homes/accounts-api/internal/core/domain"
	"github.com/maan-homes/accounts-api/internal/core/ports"
)

const defaultSessionTTL = 7 * 24 * time.Hour

type sessionClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	UserType  string `json:"user_type"`
}

// SessionTokenIssuer signs and verifies HS256 session tokens.
type SessionTokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionTokenIssuer(secret string, ttl time.Duration) *SessionTokenIssuer {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionTokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime applied to issued tokens. The session cookie
// expiry must match it.
func (s *SessionTokenIssuer) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token embedding the account identity and role with an
// absolute expiry.
func (s *SessionTokenIssuer) Issue(accountID, userType string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		AccountID: accountID,
		UserType:  userType,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Malformed tokens, bad signatures,
// wrong signing methods and expired tokens all collapse to
// domain.ErrInvalidToken so the rejection leaks nothing about its cause.
func (s *SessionTokenIssuer) Verify(token string) (*ports.SessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.AccountID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &ports.SessionClaims{AccountID: claims.AccountID, UserType: claims.UserType}, nil
}
