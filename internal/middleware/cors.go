package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS admits the browser front office configured via CORS_ALLOWED_ORIGIN.
// The surface is GET/POST/PATCH only; nothing here serves PUT or DELETE, so
// they are not advertised. X-Request-ID is exposed so client logs can quote
// the id a failed request was tagged with.
func CORS(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		if allowOrigin != "*" {
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		c.Header("Access-Control-Max-Age", "3600")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
