package services

import (
	"testing"
	"time"

	"github.com/lkcs/lkcs-backend/internal/utils"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return NewAuthService(AuthConfig{
		Username:     "admin",
		PasswordHash: hash,
		Secret:       []byte("test-signing-secret"),
		TTL:          time.Hour,
	})
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newAuthService(t)

	token, exp, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry in the past: %v", exp)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "admin" {
		t.Fatalf("wrong subject: %q", subject)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	if _, _, err := svc.Login("admin", "wrong"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Fatalf("wrong password: expected unauthorized, got %v", err)
	}
	if _, _, err := svc.Login("root", "s3cret"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Fatalf("wrong user: expected unauthorized, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)

	for _, raw := range []string{"", "nonsense", "a.b.c"} {
		if _, err := svc.Verify(raw); !utils.IsCode(err, utils.CodeUnauthorized) {
			t.Fatalf("token %q: expected unauthorized, got %v", raw, err)
		}
	}
}

func TestLoginUnconfigured(t *testing.T) {
	svc := NewAuthService(AuthConfig{})
	if _, _, err := svc.Login("admin", "x"); !utils.IsCode(err, utils.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
