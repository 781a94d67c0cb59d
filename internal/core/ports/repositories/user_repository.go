package repositories

import (
	"context"

	"github.com/mwalto7/filevault/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
// Users are create-and-read only: no update or delete is ever exposed.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// identifier is already taken.
	SaveUser(ctx context.Context, user domain.User) error
	// FindUserByID returns apperrors.ErrNotFound when no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
