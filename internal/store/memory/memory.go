// Package memory implements the store contracts in process memory. It backs
// the service tests and local development without postgres, and honors the
// same slot atomicity contract as the postgres driver: Create on a taken
// (provider, hour) slot fails with store.ErrConflict under any interleaving.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"booking-api/internal/model"
	"booking-api/internal/store"
)

var (
	_ store.UserStore        = (*UserStore)(nil)
	_ store.AppointmentStore = (*AppointmentStore)(nil)
	_ store.UserTokenStore   = (*UserTokenStore)(nil)
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User)}
}

func (s *UserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) Save(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return store.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) ListProviders(_ context.Context, exceptID string) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.User
	for _, u := range s.users {
		if u.ID != exceptID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type AppointmentStore struct {
	mu    sync.Mutex
	slots map[slotKey]model.Appointment
}

type slotKey struct {
	providerID string
	unixHour   int64
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{slots: make(map[slotKey]model.Appointment)}
}

func (s *AppointmentStore) Create(_ context.Context, a *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := slotKey{a.ProviderID, a.Date.Unix()}
	if _, taken := s.slots[key]; taken {
		return store.ErrConflict
	}
	a.CreatedAt = time.Now()
	s.slots[key] = *a
	return nil
}

func (s *AppointmentStore) FindByProviderAndDate(_ context.Context, providerID string, date time.Time) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.slots[slotKey{providerID, date.Unix()}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (s *AppointmentStore) ListByProvider(_ context.Context, providerID string, from, to time.Time) ([]model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Appointment
	for key, a := range s.slots {
		if key.providerID == providerID && !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type UserTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]model.UserToken
}

func NewUserTokenStore() *UserTokenStore {
	return &UserTokenStore{tokens: make(map[string]model.UserToken)}
}

func (s *UserTokenStore) Generate(_ context.Context, userID string) (*model.UserToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := model.UserToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.tokens[t.ID] = t
	return &t, nil
}

func (s *UserTokenStore) FindByID(_ context.Context, id string) (*model.UserToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}
