package models

import "time"

// User is the persistence shape of a registered account.
// The identifier doubles as the primary key; rows are never updated or
// deleted through the exposed API.
type User struct {
	UserID       string    `db:"user_id"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
