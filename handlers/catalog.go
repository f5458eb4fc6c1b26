package handlers

import (
	"net/http"

	"albarkah/catalog"

	"github.com/gin-gonic/gin"
)

// ListPackagesHandler returns the full travel package catalog.
func ListPackagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": catalog.All()})
}

// GetPackageHandler returns a single package by id.
func GetPackageHandler(c *gin.Context) {
	pkg, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}
