package dto

import "github.com/mwalto7/filevault/internal/core/domain"

// CredentialsRequest carries sign-up and sign-in input. The identifier
// must be an email address or an E.164 phone number.
type CredentialsRequest struct {
	ID       string `json:"id" binding:"required,identifier"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the token presented for rotation.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest optionally names the refresh token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenPairResponse is the result of sign-up, sign-in and refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ToTokenPairResponse converts a domain.TokenPair to its response DTO.
func ToTokenPairResponse(pair *domain.TokenPair) TokenPairResponse {
	return TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

// InfoResponse is the payload of GET /info.
type InfoResponse struct {
	ID string `json:"id"`
}
