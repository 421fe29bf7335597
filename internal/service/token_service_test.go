package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/config"
)

func newTestTokenService(lifetime time.Duration) *TokenService {
	return NewTokenService(&config.Config{
		TokenSecret:   "test-secret",
		TokenLifetime: lifetime,
	})
}

func TestTokenRoundtrip(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	id := uuid.New()

	token, err := svc.Issue(id, "Asha Verma")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != id.String() {
		t.Errorf("subject = %q, want %q", claims.Subject, id.String())
	}
	if claims.FullName != "Asha Verma" {
		t.Errorf("full_name = %q, want %q", claims.FullName, "Asha Verma")
	}
}

func TestTokenVerifyRejectsTampering(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, err := svc.Issue(uuid.New(), "Asha Verma")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(tampered) = %v, want ErrInvalidToken", err)
	}
}

func TestTokenVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(time.Hour)
	verifier := NewTokenService(&config.Config{
		TokenSecret:   "another-secret",
		TokenLifetime: time.Hour,
	})

	token, err := issuer.Issue(uuid.New(), "Asha Verma")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(cross-secret) = %v, want ErrInvalidToken", err)
	}
}

func TestTokenVerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tokenStr); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", tokenStr, err)
		}
	}
}

func TestTokenExpiry(t *testing.T) {
	svc := newTestTokenService(time.Minute)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(uuid.New(), "Asha Verma")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Fresh token verifies.
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("Verify(fresh) = %v", err)
	}

	// Past the lifetime the same token is invalid, indistinguishable from
	// a forged one.
	svc.now = func() time.Time { return issuedAt.Add(time.Minute + time.Second) }
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(expired) = %v, want ErrInvalidToken", err)
	}
}
