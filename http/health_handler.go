package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "loan-optimizer-api"
	serviceVersion = "1.0.0"
)

// Root handles GET /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Loan Optimizer API",
		"version": serviceVersion,
		"status":  "active",
	})
}

// Health handles GET /api/health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}
