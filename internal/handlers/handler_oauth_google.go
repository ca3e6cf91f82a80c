package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/SscSPs/kas_kelas_app/internal/platform/config"
	"github.com/SscSPs/kas_kelas_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google sign-in. A Google account signs in to an
// existing member account matched by email; it never creates one, because
// membership is managed by the class admin.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		cfg:                cfg,
	}
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeResponse defines the successful response for the /google/exchange-code endpoint.
type ExchangeCodeResponse struct {
	Token string `json:"token"`
}

// ExchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for an application token
// @Description Exchanges the authorization code with Google, validates the ID token, matches the verified email against an existing member, and returns an application JWT.
// @Tags oauth
// @Accept  json
// @Produce  json
// @Param   code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} ExchangeCodeResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 401 {object} ErrorResponse "No member account for this Google account"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !emailVerified {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account has no verified email"})
		return
	}

	user, err := h.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No member account is registered for this Google account"})
			return
		}
		respondServiceError(c, err, "Failed to look up member account")
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, ExchangeCodeResponse{Token: token})
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, cfg)
	googleRoutes := rg.Group("/google")
	{
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}
