package handlers

import (
	"errors"
	"net/http"

	leadRepo "albarkah/database/repository/lead"
	"albarkah/services/lead"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusHandler serves the public booking status checker.
type StatusHandler struct {
	svc lead.Service
}

func NewStatusHandler(svc lead.Service) *StatusHandler {
	return &StatusHandler{svc: svc}
}

// CheckStatus looks a booking up by code. Codes are matched
// case-insensitively and the response never exposes admin-only fields.
func (h *StatusHandler) CheckStatus(c *gin.Context) {
	logger := getLogger(c)
	code := c.Param("code")

	view, err := h.svc.GetStatusByCode(code)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kode booking tidak ditemukan."})
			return
		}
		logger.Error("status lookup failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check booking status"})
		return
	}
	c.JSON(http.StatusOK, view)
}
