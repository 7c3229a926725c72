// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar_backend/internal/feature/auth/domain"
	"calendar_backend/internal/feature/auth/transport/http/dto"
	"calendar_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the assigned user ID.
	Signup(ctx context.Context, name, password string) (uint, error)
	// Login authenticates a user and returns issued tokens on success.
	Login(ctx context.Context, name, password, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Refresh rotates a refresh-token session and issues a new access token.
	Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Logout revokes the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// - Binds the request JSON to SignupReq
// - Returns 400 on validation errors
// - Returns 409 when the name is already taken
// - Returns 201 with the new user ID on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}
	id, err := h.auth.Signup(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNameAlreadyExists) {
			slog.Warn("signup rejected: duplicate name", "name", req.Name, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResp{Error: "name already taken"})
			return
		}
		slog.Error("signup failed", "error", err, "name", req.Name, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "name", req.Name, "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignupResp{ID: id})
}

// Login handles the user login endpoint.
// - Binds the request JSON to LoginReq
// - Returns 400 on validation errors
// - Returns 401 with a generic message on authentication failure
// - Returns 200 with access and refresh tokens on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}
	result, err := h.auth.Login(c.Request.Context(), req.Name, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// Do not reveal whether the name or the password was wrong.
		slog.Warn("login failed", "error", err, "name", req.Name, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "invalid name or password"})
		return
	}
	slog.Info("user login successful", "name", req.Name, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResp{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		UserID:       result.UserID,
		Name:         result.Name,
	})
}

// Refresh handles the token refresh endpoint.
// The presented refresh token is rotated: the old session is revoked and a new one issued.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}
	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResp{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		UserID:       result.UserID,
		Name:         result.Name,
	})
}

// Logout handles the logout endpoint by revoking the presented refresh token.
// Revoking an unknown token still responds 200 so logout is idempotent for clients.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil &&
		!errors.Is(err, usecase.ErrSessionNotFound) {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "logout failed"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResp{Message: "ok"})
}
