package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"booking-api/internal/apperr"
	"booking-api/internal/model"
	"booking-api/internal/store"
)

// RegistrationService creates user accounts with unique emails.
type RegistrationService struct {
	users  store.UserStore
	hasher HashProvider
}

func NewRegistrationService(users store.UserStore, hasher HashProvider) *RegistrationService {
	return &RegistrationService{users: users, hasher: hasher}
}

func (s *RegistrationService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperr.ErrEmailExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// unique constraint caught a concurrent registration
		if errors.Is(err, store.ErrConflict) {
			return nil, apperr.ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
