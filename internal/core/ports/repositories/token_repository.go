package repositories

import (
	"context"

	"github.com/mwalto7/filevault/internal/core/domain"
)

// TokenRepository defines the persistence operations for refresh tokens.
// Multiple live tokens per user are allowed; rows carry no expiry.
type TokenRepository interface {
	SaveToken(ctx context.Context, token domain.RefreshToken) error
	// FindByToken looks a token up by its exact value and returns
	// apperrors.ErrNotFound when it is absent.
	FindByToken(ctx context.Context, refreshToken string) (*domain.RefreshToken, error)
	// DeleteByToken removes a token row. Deleting an absent token is not
	// an error, which makes logout idempotent.
	DeleteByToken(ctx context.Context, refreshToken string) error
}
