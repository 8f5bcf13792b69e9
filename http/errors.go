package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loan-optimizer/domain"
)

// writeError answers with the status matching err. Validation failures are
// echoed to the client; anything else is reported as an internal error.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidBatchSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// methodNotAllowed answers requests whose path exists under another method.
func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
}
