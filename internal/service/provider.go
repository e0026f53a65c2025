package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"booking-api/internal/model"
	"booking-api/internal/store"
)

const availabilityTTL = 10 * time.Minute

// HourAvailability reports one bookable hour of a provider's day.
type HourAvailability struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// ProviderService serves the read paths clients browse before booking.
type ProviderService struct {
	users        store.UserStore
	appointments store.AppointmentStore
	cache        Cache
	clock        func() time.Time
}

func NewProviderService(users store.UserStore, appointments store.AppointmentStore, cache Cache) *ProviderService {
	return &ProviderService{
		users:        users,
		appointments: appointments,
		cache:        cache,
		clock:        time.Now,
	}
}

// ListProviders returns every account except the requesting user's own.
func (s *ProviderService) ListProviders(ctx context.Context, exceptUserID string) ([]model.User, error) {
	return s.users.ListProviders(ctx, exceptUserID)
}

// ListProviderAppointments returns a provider's agenda within [from, to).
func (s *ProviderService) ListProviderAppointments(ctx context.Context, providerID string, from, to time.Time) ([]model.Appointment, error) {
	return s.appointments.ListByProvider(ctx, providerID, from, to)
}

// DayAvailability reports, hour by hour, whether the provider can still be
// booked on the given day. Results are cached; bookings invalidate the
// day's entry.
func (s *ProviderService) DayAvailability(ctx context.Context, providerID string, year int, month time.Month, day int) ([]HourAvailability, error) {
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	key := availabilityKey(providerID, dayStart)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != nil {
			var cached []HourAvailability
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	booked, err := s.appointments.ListByProvider(ctx, providerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	taken := make(map[int]bool, len(booked))
	for _, a := range booked {
		taken[a.Date.Hour()] = true
	}

	now := s.clock()
	out := make([]HourAvailability, 0, closingHour-openingHour+1)
	for h := openingHour; h <= closingHour; h++ {
		slot := time.Date(year, month, day, h, 0, 0, 0, time.Local)
		out = append(out, HourAvailability{
			Hour:      h,
			Available: !taken[h] && slot.After(now),
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			_ = s.cache.Set(ctx, key, raw, availabilityTTL)
		}
	}
	return out, nil
}
