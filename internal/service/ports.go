// Package service holds the booking business rules. Each service validates
// against current store state, then mutates; rule violations return an
// apperr sentinel before anything is persisted.
package service

import (
	"context"
	"time"
)

// HashProvider is the one-way credential hasher (bcrypt in production).
type HashProvider interface {
	Hash(plaintext string) (string, error)
	Check(plaintext, hash string) bool
}

// CredentialSigner mints the session credential returned on login.
type CredentialSigner interface {
	Sign(subject string) (string, error)
}

// MailDispatcher delivers templated mail. Send failures are surfaced to the
// caller, never swallowed.
type MailDispatcher interface {
	Send(ctx context.Context, recipient, template string, data map[string]string) error
}

// StorageProvider is the opaque file store backing avatar uploads.
type StorageProvider interface {
	SaveFile(ctx context.Context, name string) (string, error)
	DeleteFile(ctx context.Context, name string) error
}

// Cache is a byte-value cache with TTL. Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
