package domain

import "time"

// RefreshToken is a persisted long-lived credential. A refresh token is
// accepted only when it both verifies cryptographically and is present in
// the store; deleting the row revokes it.
type RefreshToken struct {
	TokenID   int64     `json:"-"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"refresh_token"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPair is the result of a successful sign-up, sign-in or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
