// Package store defines the persistence contracts for the booking domain.
// Implementations live in store/postgres (production) and store/memory
// (tests and local development); both honor the same atomicity contract:
// AppointmentStore.Create fails with ErrConflict when the (provider, hour)
// slot is already taken, even under concurrent callers.
package store

import (
	"context"
	"errors"
	"time"

	"booking-api/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	Save(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// ListProviders returns every user except the one identified by exceptID.
	ListProviders(ctx context.Context, exceptID string) ([]model.User, error)
}

type AppointmentStore interface {
	// Create persists a new appointment. Returns ErrConflict if the
	// (ProviderID, Date) slot is already booked.
	Create(ctx context.Context, a *model.Appointment) error
	FindByProviderAndDate(ctx context.Context, providerID string, date time.Time) (*model.Appointment, error)
	ListByProvider(ctx context.Context, providerID string, from, to time.Time) ([]model.Appointment, error)
}

type UserTokenStore interface {
	// Generate issues a fresh recovery token for userID.
	Generate(ctx context.Context, userID string) (*model.UserToken, error)
	FindByID(ctx context.Context, id string) (*model.UserToken, error)
}
