package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lkcs/lkcs-backend/internal/utils"
)

// AuthConfig holds the single admin credential and signing material, all
// env-driven. The password is stored as a bcrypt hash.
type AuthConfig struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TTL          time.Duration
}

type AuthService interface {
	// Login checks the credential and issues a signed admin token.
	Login(username, password string) (token string, expiresAt time.Time, err error)
	// Verify validates a token and returns its subject.
	Verify(token string) (subject string, err error)
}

type authService struct {
	cfg AuthConfig
}

func NewAuthService(cfg AuthConfig) AuthService {
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	return &authService{cfg: cfg}
}

func (s *authService) Login(username, password string) (string, time.Time, error) {
	const op = "AuthService.Login"

	if s.cfg.Username == "" || s.cfg.PasswordHash == "" || len(s.cfg.Secret) == 0 {
		return "", time.Time{}, utils.E(utils.CodeInternal, op, "admin credential is not configured", nil)
	}
	if username != s.cfg.Username {
		return "", time.Time{}, utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
	}
	if err := utils.CheckPassword(s.cfg.PasswordHash, password); err != nil {
		return "", time.Time{}, utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
	}

	now := time.Now().UTC()
	exp := now.Add(s.cfg.TTL)

	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return "", time.Time{}, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return tok, exp, nil
}

func (s *authService) Verify(raw string) (string, error) {
	const op = "AuthService.Verify"

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || tok == nil || !tok.Valid || claims.Subject == "" {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid token", err)
	}
	return claims.Subject, nil
}
