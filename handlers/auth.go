package handlers

import (
	"errors"
	"net/http"

	"albarkah/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves admin sign-in and sign-out.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login verifies the admin credentials and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.svc.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("admin sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed, please try again"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented token. Requires AdminAuthMiddleware, which
// stores the raw token in the context.
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := getLogger(c)

	token := c.GetString("authToken")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := h.svc.SignOut(c.Request.Context(), token); err != nil {
		logger.Error("admin sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
