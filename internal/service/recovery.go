package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking-api/internal/apperr"
	"booking-api/internal/store"
)

// TokenTTL is how long a recovery token stays consumable after issuance.
const TokenTTL = 2 * time.Hour

// PasswordRecoveryService issues recovery tokens and mails them out.
type PasswordRecoveryService struct {
	users  store.UserStore
	tokens store.UserTokenStore
	mail   MailDispatcher
}

func NewPasswordRecoveryService(users store.UserStore, tokens store.UserTokenStore, mail MailDispatcher) *PasswordRecoveryService {
	return &PasswordRecoveryService{users: users, tokens: tokens, mail: mail}
}

func (s *PasswordRecoveryService) InitiateRecovery(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	t, err := s.tokens.Generate(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	err = s.mail.Send(ctx, u.Email, "password_recovery", map[string]string{
		"name":  u.Name,
		"token": t.ID,
	})
	if err != nil {
		return fmt.Errorf("dispatch recovery mail: %w", err)
	}
	return nil
}

// PasswordResetService consumes a recovery token within its validity window
// and overwrites the owner's credential.
type PasswordResetService struct {
	users  store.UserStore
	tokens store.UserTokenStore
	hasher HashProvider
	clock  func() time.Time
}

func NewPasswordResetService(users store.UserStore, tokens store.UserTokenStore, hasher HashProvider) *PasswordResetService {
	return &PasswordResetService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		clock:  time.Now,
	}
}

func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	t, err := s.tokens.FindByID(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.ErrInvalidToken
	}
	if err != nil {
		return fmt.Errorf("find token: %w", err)
	}

	u, err := s.users.FindByID(ctx, t.UserID)
	if errors.Is(err, store.ErrNotFound) {
		// orphaned token
		return apperr.ErrInvalidToken
	}
	if err != nil {
		return fmt.Errorf("find token owner: %w", err)
	}

	if s.clock().Sub(t.CreatedAt) > TokenTTL {
		return apperr.ErrTokenExpired
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash
	if err := s.users.Save(ctx, u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
