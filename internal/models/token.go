package models

import "time"

// RefreshToken is the persistence shape of an issued refresh token.
// There is no expiry column: validity is the token's own signature plus
// the row's presence.
type RefreshToken struct {
	TokenID      int64     `db:"token_id"`
	UserID       string    `db:"user_id"`
	RefreshToken string    `db:"refresh_token"`
	CreatedAt    time.Time `db:"created_at"`
}
