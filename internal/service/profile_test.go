package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-api/internal/apperr"
	"booking-api/internal/store/memory"
)

func TestUpdateAvatar(t *testing.T) {
	users := memory.NewUserStore()
	files := &fakeStorage{}
	u := seedUser(t, users, "John Doe", "johndoe@example.com")

	svc := NewProfileService(users, files)

	got, err := svc.UpdateAvatar(context.Background(), u.ID, "avatar.jpg")
	require.NoError(t, err)
	assert.Equal(t, "avatar.jpg", got.Avatar)
	assert.Empty(t, files.deleted)

	// updating again removes the previous file
	got, err = svc.UpdateAvatar(context.Background(), u.ID, "avatar2.jpg")
	require.NoError(t, err)
	assert.Equal(t, "avatar2.jpg", got.Avatar)
	assert.Equal(t, []string{"avatar.jpg"}, files.deleted)

	stored, err := users.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "avatar2.jpg", stored.Avatar)
}

func TestUpdateAvatarMissingUser(t *testing.T) {
	svc := NewProfileService(memory.NewUserStore(), &fakeStorage{})

	_, err := svc.UpdateAvatar(context.Background(), "non-existing-user", "avatar.jpg")
	assert.ErrorIs(t, err, apperr.ErrUserMissing)
}
