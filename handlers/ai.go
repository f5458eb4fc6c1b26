package handlers

import (
	"net/http"
	"strings"

	"albarkah/models"
	ai "albarkah/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the public Mutawwif assistant and the admin marketing
// copy generator.
type AIHandler struct {
	svc ai.Service
}

func NewAIHandler(svc ai.Service) *AIHandler {
	return &AIHandler{svc: svc}
}

// Chat answers one Mutawwif conversation turn.
func (h *AIHandler) Chat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message text is required"})
		return
	}
	if req.ClientID == "" {
		req.ClientID = c.ClientIP()
	}

	resp, err := h.svc.Chat(c.Request.Context(), req)
	if err != nil {
		logger.Error("mutawwif chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResetChat drops a client's conversation history so the assistant starts
// fresh.
func (h *AIHandler) ResetChat(c *gin.Context) {
	logger := getLogger(c)

	clientID := c.Param("clientID")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientID is required"})
		return
	}
	if err := h.svc.ResetChat(c.Request.Context(), clientID); err != nil {
		logger.Error("failed to reset chat", zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": clientID})
}

// MarketingCopy asks the model for promotional copy about a package.
func (h *AIHandler) MarketingCopy(c *gin.Context) {
	var req struct {
		PackageID string `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"copy": h.svc.MarketingCopy(c.Request.Context(), req.PackageID)})
}
