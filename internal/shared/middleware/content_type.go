package middleware

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects any request not declaring a JSON body, before any
// handler logic runs. The original API contract applies this to every
// method, including GETs.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "requests must be application/json",
			})
			return
		}
		c.Next()
	}
}
