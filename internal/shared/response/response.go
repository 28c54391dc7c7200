package response

import (
	"github.com/gin-gonic/gin"
)

// Every error body this API produces is a JSON object with a "message"
// field; schema violations additionally carry the validator's own message
// under "error". Success bodies are shaped per-handler.

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func AbortMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}

// SchemaViolation reports a 400 with the violation detail usable directly
// by API clients.
func SchemaViolation(c *gin.Context, detail string) {
	c.JSON(400, gin.H{
		"message": "address payload failed validation",
		"error":   detail,
	})
}
