package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
	"github.com/mwalto7/filevault/internal/models"
)

type PgxTokenRepository struct {
	db PgxPool
}

func NewPgxTokenRepository(db PgxPool) portsrepo.TokenRepository {
	return &PgxTokenRepository{db: db}
}

// Ensure PgxTokenRepository implements portsrepo.TokenRepository
var _ portsrepo.TokenRepository = (*PgxTokenRepository)(nil)

func toDomainToken(m models.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		TokenID:   m.TokenID,
		UserID:    m.UserID,
		Token:     m.RefreshToken,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxTokenRepository) SaveToken(ctx context.Context, token domain.RefreshToken) error {
	query := `
        INSERT INTO refresh_tokens (user_id, refresh_token, created_at)
        VALUES ($1, $2, $3);
    `
	_, err := r.db.Exec(ctx, query, token.UserID, token.Token, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *PgxTokenRepository) FindByToken(ctx context.Context, refreshToken string) (*domain.RefreshToken, error) {
	query := `
		SELECT token_id, user_id, refresh_token, created_at
		FROM refresh_tokens
		WHERE refresh_token = $1;
	`
	var modelToken models.RefreshToken
	err := r.db.QueryRow(ctx, query, refreshToken).Scan(
		&modelToken.TokenID,
		&modelToken.UserID,
		&modelToken.RefreshToken,
		&modelToken.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	domainToken := toDomainToken(modelToken)
	return &domainToken, nil
}

func (r *PgxTokenRepository) DeleteByToken(ctx context.Context, refreshToken string) error {
	query := `DELETE FROM refresh_tokens WHERE refresh_token = $1;`
	// Zero rows affected is fine: deleting an absent token keeps logout
	// idempotent.
	_, err := r.db.Exec(ctx, query, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
