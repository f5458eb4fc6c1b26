package handlers

import (
	"errors"
	"net/http"

	"albarkah/models"
	"albarkah/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the multi-step checkout flow over HTTP.
type CheckoutHandler struct {
	svc checkout.SessionService
}

func NewCheckoutHandler(svc checkout.SessionService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// InitiateSession starts a checkout for a package.
func (h *CheckoutHandler) InitiateSession(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		PackageID string `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.svc.Initiate(input.PackageID)
	if err != nil {
		if errors.Is(err, checkout.ErrUnknownPackage) {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}
		logger.Error("failed to initiate checkout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start checkout"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitStep records the fields of one step and advances the session.
func (h *CheckoutHandler) SubmitStep(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	var input struct {
		Step    models.CheckoutStep `json:"step" binding:"required"`
		Details checkout.StepInput  `json:"details"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.svc.SubmitStep(sessionID, input.Step, input.Details)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found or expired"})
		case errors.Is(err, checkout.ErrWrongStep):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to submit checkout step",
				zap.String("sessionID", sessionID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update checkout"})
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

// StepBack moves the session one step backward without losing entered data.
func (h *CheckoutHandler) StepBack(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	session, err := h.svc.Back(sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found or expired"})
			return
		}
		logger.Error("failed to step back", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update checkout"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking finalizes the session into a stored lead and returns the
// booking code plus the WhatsApp handoff link.
func (h *CheckoutHandler) ConfirmBooking(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	confirmation, err := h.svc.Confirm(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found or expired"})
		case errors.Is(err, checkout.ErrWrongStep):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to confirm booking",
				zap.String("sessionID", sessionID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}
