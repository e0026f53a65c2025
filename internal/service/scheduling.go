package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"booking-api/internal/apperr"
	"booking-api/internal/model"
	"booking-api/internal/store"
)

// Bookable clock-hours, inclusive on both ends. The upper bound keeps the
// 17:00 slot bookable: minutes are discarded by truncation before the check.
const (
	openingHour = 8
	closingHour = 17
)

// SchedulingService enforces the booking rules and creates appointments.
type SchedulingService struct {
	appointments store.AppointmentStore
	cache        Cache
	clock        func() time.Time
}

func NewSchedulingService(appointments store.AppointmentStore, cache Cache) *SchedulingService {
	return &SchedulingService{
		appointments: appointments,
		cache:        cache,
		clock:        time.Now,
	}
}

// Schedule books the hour containing date with the given provider. The hour
// is truncated first, so scheduling 10:05 and 10:00 target the same slot.
func (s *SchedulingService) Schedule(ctx context.Context, providerID, userID string, date time.Time) (*model.Appointment, error) {
	hour := StartOfHour(date)

	if userID == providerID {
		return nil, apperr.ErrSelfBooking
	}
	if hour.Before(s.clock()) {
		return nil, apperr.ErrPastDate
	}
	if hour.Hour() < openingHour || hour.Hour() > closingHour {
		return nil, apperr.ErrOutsideBusinessHours
	}

	_, err := s.appointments.FindByProviderAndDate(ctx, providerID, hour)
	if err == nil {
		return nil, apperr.ErrSlotTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	a := &model.Appointment{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		UserID:     userID,
		Date:       hour,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		// the store lost a race for the slot
		if errors.Is(err, store.ErrConflict) {
			return nil, apperr.ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, availabilityKey(providerID, hour))
	}
	return a, nil
}

// StartOfHour truncates t to the beginning of its local clock-hour.
func StartOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func availabilityKey(providerID string, t time.Time) string {
	return fmt.Sprintf("availability:%s:%s", providerID, t.Format("2006-01-02"))
}
