package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"booking-api/internal/model"
	"booking-api/internal/store/memory"
)

// fakeHasher is a transparent hash provider so tests can assert on stored
// credentials without paying for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(pw string) (string, error) { return "hashed:" + pw, nil }

func (fakeHasher) Check(pw, hash string) bool { return "hashed:"+pw == hash }

type sentMail struct {
	Recipient string
	Template  string
	Data      map[string]string
}

// fakeMail records dispatches and can be primed to fail.
type fakeMail struct {
	sent []sentMail
	err  error
}

func (m *fakeMail) Send(_ context.Context, recipient, template string, data map[string]string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{Recipient: recipient, Template: template, Data: data})
	return nil
}

// fakeStorage records saved and deleted files.
type fakeStorage struct {
	saved   []string
	deleted []string
}

func (s *fakeStorage) SaveFile(_ context.Context, name string) (string, error) {
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, name string) error {
	s.deleted = append(s.deleted, name)
	return nil
}

type fakeSigner struct{}

func (fakeSigner) Sign(subject string) (string, error) { return "credential-for:" + subject, nil }

// failingUserStore wraps the memory store to surface an infrastructure
// error from every call.
type failingUserStore struct {
	*memory.UserStore
}

var errStoreDown = errors.New("store unreachable")

func (failingUserStore) FindByEmail(context.Context, string) (*model.User, error) {
	return nil, errStoreDown
}

func seedUser(t *testing.T, users *memory.UserStore, name, email string) *model.User {
	t.Helper()
	u := &model.User{
		ID:           fmt.Sprintf("user-%s", email),
		Name:         name,
		Email:        email,
		PasswordHash: "hashed:123456",
	}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
