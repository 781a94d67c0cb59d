package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
	portssvc "github.com/mwalto7/filevault/internal/core/ports/services"
	"github.com/mwalto7/filevault/internal/platform/config"
	"github.com/mwalto7/filevault/internal/utils"
)

// authService implements the AuthSvcFacade over the credential and token
// stores. Access tokens are stateless; refresh tokens are persisted and
// rotated on use.
type authService struct {
	userRepo  portsrepo.UserRepository
	tokenRepo portsrepo.TokenRepository
	audit     *AuditRecorder
	cfg       *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, tokenRepo portsrepo.TokenRepository, audit *AuditRecorder) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		audit:     audit,
		cfg:       cfg,
	}
}

// issueTokenPair mints an access/refresh pair for the user and persists
// the refresh token.
func (s *authService) issueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(userID, s.cfg.RefreshSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = s.tokenRepo.SaveToken(ctx, domain.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *authService) SignUp(ctx context.Context, id, password string) (*domain.TokenPair, error) {
	if id == "" || password == "" || !utils.IsValidID(id) {
		return nil, apperrors.ErrValidation
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           id,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.audit.Record(ctx, user.ID, domain.AuditUserCreate, nil, user)

	return s.issueTokenPair(ctx, user.ID)
}

func (s *authService) SignIn(ctx context.Context, id, password string) (*domain.TokenPair, error) {
	if id == "" || password == "" || !utils.IsValidID(id) {
		return nil, apperrors.ErrValidation
	}

	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, user.ID, domain.AuditUserSignin, nil, map[string]string{"id": user.ID})

	return pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrValidation
	}

	// The token must be present in the store AND verify cryptographically.
	stored, err := s.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshSecret)
	if err != nil {
		// The stale store row is deliberately left in place on
		// verification failure.
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user for refresh: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Strict rotation: consume the presented token. Create-new and
	// delete-old are two independent statements; a crash between them
	// leaves two live tokens, which is acceptable.
	if err := s.tokenRepo.DeleteByToken(ctx, stored.Token); err != nil {
		return nil, fmt.Errorf("failed to delete rotated refresh token: %w", err)
	}

	s.audit.Record(ctx, user.ID, domain.AuditTokenRefresh,
		map[string]string{"refresh_token": stored.Token},
		map[string]string{"refresh_token": pair.RefreshToken},
	)

	return pair, nil
}

func (s *authService) Logout(ctx context.Context, userID, refreshToken string) error {
	// The refresh token is optional; deleting an absent one is not an
	// error. The access token stays valid until its natural expiry.
	if refreshToken != "" {
		if err := s.tokenRepo.DeleteByToken(ctx, refreshToken); err != nil {
			return fmt.Errorf("failed to delete refresh token on logout: %w", err)
		}
	}

	var oldData any
	if refreshToken != "" {
		oldData = map[string]string{"refresh_token": refreshToken}
	}
	s.audit.Record(ctx, userID, domain.AuditUserLogout, oldData, nil)

	return nil
}
