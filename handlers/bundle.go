// File: albarkah/handlers/bundle.go
package handlers

import (
	"albarkah/services/auth"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// AuthService is needed by the admin middleware for revocation checks.
	AuthService auth.Service

	// Catalog endpoints
	ListPackages gin.HandlerFunc
	GetPackage   gin.HandlerFunc

	// Checkout endpoints
	InitiateCheckout gin.HandlerFunc
	SubmitStep       gin.HandlerFunc
	StepBack         gin.HandlerFunc
	ConfirmBooking   gin.HandlerFunc

	// Status checker
	CheckStatus gin.HandlerFunc

	// Auth endpoints
	Login  gin.HandlerFunc
	Logout gin.HandlerFunc

	// Admin endpoints
	ListLeads   gin.HandlerFunc
	GetLead     gin.HandlerFunc
	UpdateLead  gin.HandlerFunc
	DeleteLead  gin.HandlerFunc
	GetStats    gin.HandlerFunc
	ExportLeads gin.HandlerFunc
	GetSummary  gin.HandlerFunc

	// AI endpoints
	Chat          gin.HandlerFunc
	ResetChat     gin.HandlerFunc
	MarketingCopy gin.HandlerFunc
}
