package services

import (
	"context"

	"github.com/mwalto7/filevault/internal/core/domain"
)

// AuthSvcFacade orchestrates the token lifecycle: sign-up, sign-in,
// rotation and logout.
type AuthSvcFacade interface {
	// SignUp registers a new user and returns its first token pair.
	SignUp(ctx context.Context, id, password string) (*domain.TokenPair, error)
	// SignIn verifies credentials and issues a token pair.
	SignIn(ctx context.Context, id, password string) (*domain.TokenPair, error)
	// Refresh rotates a refresh token: the presented token is consumed and
	// a fresh pair issued. Presenting the same token twice succeeds once.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// Logout revokes the supplied refresh token if any. The still-valid
	// access token cannot be revoked before its natural expiry.
	Logout(ctx context.Context, userID, refreshToken string) error
}
