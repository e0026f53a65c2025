package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher(t *testing.T) {
	h := Hasher{}

	hash, err := h.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, h.Check("123456", hash))
	assert.False(t, h.Check("wrong", hash))
}

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner(Config{Secret: []byte("test-secret"), ExpiresIn: time.Hour})

	cred, err := s.Sign("user-1")
	require.NoError(t, err)

	subject, err := s.Parse(cred)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestSignerRejectsExpired(t *testing.T) {
	s := NewSigner(Config{Secret: []byte("test-secret"), ExpiresIn: -time.Minute})

	cred, err := s.Sign("user-1")
	require.NoError(t, err)

	_, err = s.Parse(cred)
	assert.Error(t, err)
}

func TestSignerRejectsWrongSecret(t *testing.T) {
	s := NewSigner(Config{Secret: []byte("test-secret"), ExpiresIn: time.Hour})
	other := NewSigner(Config{Secret: []byte("other-secret"), ExpiresIn: time.Hour})

	cred, err := s.Sign("user-1")
	require.NoError(t, err)

	_, err = other.Parse(cred)
	assert.Error(t, err)
}
