package model

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Appointment books a provider for one hour. Date is always truncated to the
// start of its hour; (ProviderID, Date) is the uniqueness key.
type Appointment struct {
	ID         string
	ProviderID string
	UserID     string
	Date       time.Time
	CreatedAt  time.Time
}

// UserToken is a password-recovery bearer token. ID is the token value
// itself; it is only accepted within a fixed window from CreatedAt.
type UserToken struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
