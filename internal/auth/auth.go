package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadToken = errors.New("invalid token")

// Hasher is the bcrypt-backed hash provider for user credentials.
type Hasher struct{}

func (Hasher) Hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func (Hasher) Check(pw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Config carries the credential-signing options. There is no process-wide
// default; the signer is constructed explicitly at startup.
type Config struct {
	Secret    []byte
	ExpiresIn time.Duration
}

// Signer mints and parses the HS256 session credentials returned on login.
type Signer struct {
	cfg Config
}

func NewSigner(cfg Config) *Signer {
	return &Signer{cfg: cfg}
}

// Sign issues a credential bound to subject (the user id), expiring after
// the configured duration.
func (s *Signer) Sign(subject string) (string, error) {
	now := time.Now()
	c := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.ExpiresIn)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.cfg.Secret)
}

// Parse validates raw and returns its subject.
func (s *Signer) Parse(raw string) (string, error) {
	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return s.cfg.Secret, nil
	})
	if err != nil {
		return "", err
	}
	c, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid || c.Subject == "" {
		return "", ErrBadToken
	}
	return c.Subject, nil
}
