package service

import (
	"context"
	"errors"
	"fmt"

	"booking-api/internal/apperr"
	"booking-api/internal/model"
	"booking-api/internal/store"
)

// AuthService verifies credentials and issues session credentials.
type AuthService struct {
	users  store.UserStore
	hasher HashProvider
	signer CredentialSigner
}

func NewAuthService(users store.UserStore, hasher HashProvider, signer CredentialSigner) *AuthService {
	return &AuthService{users: users, hasher: hasher, signer: signer}
}

// Authenticate returns the user and a signed credential. An unknown email
// and a wrong password fail identically, so callers cannot probe for
// account existence.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Check(password, u.PasswordHash) {
		return nil, "", apperr.ErrInvalidCredentials
	}

	cred, err := s.signer.Sign(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("sign credential: %w", err)
	}
	return u, cred, nil
}
