package domain

import "time"

// User represents a registered account in the domain.
// The identifier is the primary key: a valid email address or an E.164
// phone number, immutable once created.
type User struct {
	ID           string    `json:"id"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
