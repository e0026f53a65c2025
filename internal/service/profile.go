package service

import (
	"context"
	"errors"
	"fmt"

	"booking-api/internal/apperr"
	"booking-api/internal/model"
	"booking-api/internal/store"
)

// ProfileService updates user profile data, currently just the avatar.
type ProfileService struct {
	users   store.UserStore
	storage StorageProvider
}

func NewProfileService(users store.UserStore, storage StorageProvider) *ProfileService {
	return &ProfileService{users: users, storage: storage}
}

// UpdateAvatar replaces the user's avatar with the uploaded file, removing
// the previous one from storage.
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID, filename string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrUserMissing
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Avatar != "" {
		if err := s.storage.DeleteFile(ctx, u.Avatar); err != nil {
			return nil, fmt.Errorf("delete old avatar: %w", err)
		}
	}

	stored, err := s.storage.SaveFile(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("save avatar: %w", err)
	}

	u.Avatar = stored
	if err := s.users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}
