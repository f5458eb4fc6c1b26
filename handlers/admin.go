package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
	"albarkah/services/lead"
	ai "albarkah/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler serves the dashboard: lead CRUD, aggregates, export and the
// AI summary.
type AdminHandler struct {
	leads lead.Service
	ai    ai.Service
}

func NewAdminHandler(leads lead.Service, aiSvc ai.Service) *AdminHandler {
	return &AdminHandler{leads: leads, ai: aiSvc}
}

// ListLeads returns leads, optionally filtered by ?q= on name or code.
func (h *AdminHandler) ListLeads(c *gin.Context) {
	logger := getLogger(c)

	leads, err := h.leads.List(c.Query("q"))
	if err != nil {
		logger.Error("failed to list leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

// GetLead returns one lead by id.
func (h *AdminHandler) GetLead(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	ld, err := h.leads.Get(id)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		logger.Error("failed to fetch lead", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch lead"})
		return
	}
	c.JSON(http.StatusOK, ld)
}

// UpdateLead replaces the editable fields of a lead.
func (h *AdminHandler) UpdateLead(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input models.Lead
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.leads.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, leadRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		case errors.Is(err, lead.ErrInvalidLead):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("failed to update lead", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lead"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteLead removes a lead permanently.
func (h *AdminHandler) DeleteLead(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.leads.Delete(id); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		logger.Error("failed to delete lead", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetStats returns the dashboard aggregates.
func (h *AdminHandler) GetStats(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.leads.Stats()
	if err != nil {
		logger.Error("failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportLeads streams the full lead collection as an XLSX attachment.
func (h *AdminHandler) ExportLeads(c *gin.Context) {
	logger := getLogger(c)

	data, err := h.leads.ExportXLSX()
	if err != nil {
		logger.Error("failed to export leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export leads"})
		return
	}

	filename := fmt.Sprintf("leads-al-barkah-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GetSummary returns the cached AI summary of lead trends.
func (h *AdminHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.ai.Summary(c.Request.Context())})
}
