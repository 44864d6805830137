// Package readonly implements the maintenance switch that turns the API
// read-only while the store is being backed up or migrated.
package readonly

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is the machine-readable error code of a blocked request.
const Code = "READ_ONLY"

// Message is returned to clients whose write was blocked.
const Message = "service is in read-only mode"

// Middleware blocks write operations in read-only mode.
// Read-only operations (GET, HEAD, OPTIONS) are always allowed.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": Message,
			"code":  Code,
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
