package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-api/internal/apperr"
	"booking-api/internal/store/memory"
)

func TestAuthenticate(t *testing.T) {
	users := memory.NewUserStore()
	u := seedUser(t, users, "John Doe", "johndoe@example.com")

	svc := NewAuthService(users, fakeHasher{}, fakeSigner{})

	got, cred, err := svc.Authenticate(context.Background(), "johndoe@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "credential-for:"+u.ID, cred)
}

func TestAuthenticateFailsIdentically(t *testing.T) {
	users := memory.NewUserStore()
	seedUser(t, users, "John Doe", "johndoe@example.com")

	svc := NewAuthService(users, fakeHasher{}, fakeSigner{})

	_, _, unknownErr := svc.Authenticate(context.Background(), "nobody@example.com", "123456")
	_, _, wrongPwErr := svc.Authenticate(context.Background(), "johndoe@example.com", "wrong")

	// unknown email and wrong password are indistinguishable
	assert.ErrorIs(t, unknownErr, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, apperr.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestAuthenticateStoreFailure(t *testing.T) {
	svc := NewAuthService(failingUserStore{memory.NewUserStore()}, fakeHasher{}, fakeSigner{})

	_, _, err := svc.Authenticate(context.Background(), "johndoe@example.com", "123456")
	require.Error(t, err)
	// infrastructure errors keep their identity and carry no business kind
	assert.ErrorIs(t, err, errStoreDown)
	_, isBusiness := apperr.KindOf(err)
	assert.False(t, isBusiness)
}
