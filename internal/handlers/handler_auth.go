package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwalto7/filevault/internal/apperrors"
	portssvc "github.com/mwalto7/filevault/internal/core/ports/services"
	"github.com/mwalto7/filevault/internal/dto"
	"github.com/mwalto7/filevault/internal/middleware"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// SignUp godoc
// @Summary Register new user
// @Description Creates a new account and returns its first token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.CredentialsRequest true "Email or E.164 phone plus password"
// @Success 201 {object} dto.TokenPairResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindErrorMessage(err, "ID and password are required"))
		return
	}

	pair, err := h.authService.SignUp(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "Invalid ID format")
		case errors.Is(err, apperrors.ErrDuplicate):
			respondError(c, http.StatusBadRequest, "User already exists")
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign up user", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTokenPairResponse(pair))
}

// SignIn godoc
// @Summary User sign-in
// @Description Verifies credentials and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param signin body dto.CredentialsRequest true "Credentials"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindErrorMessage(err, "ID and password are required"))
		return
	}

	pair, err := h.authService.SignIn(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "Invalid ID format")
		case errors.Is(err, apperrors.ErrUnauthorized):
			// Unknown user and wrong password share one message so the
			// response does not leak which ids exist.
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign in user", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenPairResponse(pair))
}

// RefreshToken godoc
// @Summary Rotate a refresh token
// @Description Exchanges a live refresh token for a fresh pair. The presented token is consumed.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /signin/new_token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Refresh token required")
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "Refresh token required")
		case errors.Is(err, apperrors.ErrForbidden):
			respondError(c, http.StatusForbidden, "Invalid refresh token")
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to refresh token", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenPairResponse(pair))
}

// Info godoc
// @Summary Caller identity
// @Description Returns the id of the authenticated caller.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InfoResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /info [get]
func (h *AuthHandler) Info(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "Token required")
		return
	}
	c.JSON(http.StatusOK, dto.InfoResponse{ID: userID})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the supplied refresh token if any. The access token stays valid until it expires.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "Token required")
		return
	}

	// The body is optional on logout; a missing or malformed one just
	// means there is no refresh token to revoke.
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.Logout(c.Request.Context(), userID, req.RefreshToken); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to log out user", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
