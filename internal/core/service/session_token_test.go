package service

import (
	"strings"
	"testing"
	"time"

	"github.com/maan-homes/accounts-api/internal/core/domain"
)

func TestSessionTokens_RoundTrip(t *testing.T) {
	issuer := NewSessionTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user_1", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.AccountID != "user_1" {
		t.Fatalf("unexpected account id: %s", claims.AccountID)
	}
	if claims.UserType != domain.RoleBuyer {
		t.Fatalf("unexpected user type: %s", claims.UserType)
	}
}

func TestSessionTokens_Expired(t *testing.T) {
	issuer := NewSessionTokenIssuer("secret", -time.Minute)

	token, err := issuer.Issue("user_1", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSessionTokens_WrongKey(t *testing.T) {
	issuer := NewSessionTokenIssuer("secret", time.Hour)
	other := NewSessionTokenIssuer("different", time.Hour)

	token, err := issuer.Issue("user_1", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := other.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken under wrong key, got %v", err)
	}
}

func TestSessionTokens_TamperedSignature(t *testing.T) {
	issuer := NewSessionTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user_1", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}

	// Mutate every character of the signature segment in turn; each
	// variant must be rejected with the same sentinel.
	sig := parts[2]
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		forged := parts[0] + "." + parts[1] + "." + string(mutated)
		if forged == token {
			continue
		}
		if _, err := issuer.Verify(forged); err != domain.ErrInvalidToken {
			t.Fatalf("mutation at %d: expected ErrInvalidToken, got %v", i, err)
		}
	}
}

func TestSessionTokens_Garbage(t *testing.T) {
	issuer := NewSessionTokenIssuer("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(tok); err != domain.ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}
