package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"booking-api/internal/model"
	"booking-api/internal/store"
)

// Create relies on the unique index over (provider_id, date) to serialize
// concurrent bookings of the same slot; the losing insert surfaces as
// store.ErrConflict.
func (s *AppointmentStore) Create(ctx context.Context, a *model.Appointment) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, provider_id, user_id, date)
		 VALUES ($1,$2,$3,$4)
		 RETURNING created_at`,
		a.ID, a.ProviderID, a.UserID, a.Date,
	).Scan(&a.CreatedAt)
	if isUniqueViolation(err) {
		return store.ErrConflict
	}
	return err
}

func (s *AppointmentStore) FindByProviderAndDate(ctx context.Context, providerID string, date time.Time) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, provider_id, user_id, date, created_at
		 FROM appointments WHERE provider_id = $1 AND date = $2`,
		providerID, date,
	).Scan(&a.ID, &a.ProviderID, &a.UserID, &a.Date, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentStore) ListByProvider(ctx context.Context, providerID string, from, to time.Time) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, provider_id, user_id, date, created_at
		 FROM appointments
		 WHERE provider_id = $1 AND date >= $2 AND date < $3
		 ORDER BY date`, providerID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.ProviderID, &a.UserID, &a.Date, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
