package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultResetTTL  = 15 * time.Minute
	resetSecretBytes = 8
)

// ResetTokenIssuer produces one-time password-reset secrets. Only the bcrypt
// digest of a secret is ever persisted; the plaintext leaves the process once,
// inside the reset email.
type ResetTokenIssuer struct {
	ttl time.Duration
}

func NewResetTokenIssuer(ttl time.Duration) *ResetTokenIssuer {
	if ttl <= 0 {
		ttl = defaultResetTTL
	}
	return &ResetTokenIssuer{ttl: ttl}
}

// Issue generates a fresh secret from crypto/rand and returns it together
// with its digest and absolute expiry.
func (r *ResetTokenIssuer) Issue() (secret, digest string, expiry time.Time, err error) {
	buf := make([]byte, resetSecretBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, fmt.Errorf("reset token: %w", err)
	}
	secret = hex.EncodeToString(buf)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("reset token digest: %w", err)
	}
	return secret, string(hash), time.Now().Add(r.ttl), nil
}

// Consume reports whether the candidate secret authorizes a reset against the
// stored digest/expiry pair. An expired pair never authorizes, whatever the
// secret.
func (r *ResetTokenIssuer) Consume(secret, digest string, expiry time.Time) bool {
	if digest == "" || !time.Now().Before(expiry) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
