package authz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const publicIDKey = "public_id"

// RequireAccessLevel gates a route behind the external access-control
// service. On success the resolved caller identity is injected into the
// request context for the wrapped handler; every failure mode, including a
// transient collaborator outage, is reported as 401.
func RequireAccessLevel(checker AccessChecker, level int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "missing access token",
			})
			return
		}

		publicID, err := checker.CheckAccess(c.Request.Context(), token, level)
		if err != nil {
			log.Debug().
				Err(err).
				Int("level", level).
				Str("path", c.Request.URL.Path).
				Msg("access check failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "access denied",
			})
			return
		}

		c.Set(publicIDKey, publicID)
		c.Next()
	}
}

// CallerID returns the identity resolved by RequireAccessLevel. Handlers on
// protected routes must never see a request without one.
func CallerID(c *gin.Context) (string, error) {
	v, exists := c.Get(publicIDKey)
	if !exists {
		return "", errors.New("caller identity missing from context")
	}
	publicID, ok := v.(string)
	if !ok || publicID == "" {
		return "", errors.New("caller identity missing from context")
	}
	return publicID, nil
}
