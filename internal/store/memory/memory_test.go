package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-api/internal/model"
	"booking-api/internal/store"
)

func TestAppointmentSlotAtomicity(t *testing.T) {
	s := NewAppointmentStore()
	slot := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)

	// many concurrent bookings of the same slot; exactly one wins
	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Create(context.Background(), &model.Appointment{
				ID:         fmt.Sprintf("a-%d", i),
				ProviderID: "provider",
				UserID:     fmt.Sprintf("user-%d", i),
				Date:       slot,
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, store.ErrConflict)
		}
	}
	assert.Equal(t, 1, created)
}

func TestAppointmentFindByProviderAndDate(t *testing.T) {
	s := NewAppointmentStore()
	slot := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)

	_, err := s.FindByProviderAndDate(context.Background(), "provider", slot)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Create(context.Background(), &model.Appointment{
		ID: "a1", ProviderID: "provider", UserID: "user", Date: slot,
	}))

	got, err := s.FindByProviderAndDate(context.Background(), "provider", slot)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	// same hour, different provider is a different slot
	_, err = s.FindByProviderAndDate(context.Background(), "other", slot)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserStoreUniqueEmail(t *testing.T) {
	s := NewUserStore()

	require.NoError(t, s.Create(context.Background(), &model.User{
		ID: "u1", Email: "johndoe@example.com",
	}))
	err := s.Create(context.Background(), &model.User{
		ID: "u2", Email: "johndoe@example.com",
	})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestUserStoreSaveUnknown(t *testing.T) {
	s := NewUserStore()
	err := s.Save(context.Background(), &model.User{ID: "ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserTokenStore(t *testing.T) {
	s := NewUserTokenStore()

	tok, err := s.Generate(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, tok.ID)
	assert.WithinDuration(t, time.Now(), tok.CreatedAt, time.Second)

	got, err := s.FindByID(context.Background(), tok.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	_, err = s.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
