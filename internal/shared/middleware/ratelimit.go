package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"address-backend/internal/shared/utils"
	"address-backend/pkg/cache"
)

// RateLimit enforces a fixed-window request quota per route and client IP.
// name keys the counter so each route carries its own budget. A limit of
// zero always trips, which the admin smoke-test route relies on.
//
// Counter failures fail open: losing Redis should degrade rate limiting,
// not take the API down.
func RateLimit(counter cache.Counter, name string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			tooManyRequests(c)
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", name, utils.ExtractClientIP(c))
		count, err := counter.Increment(c.Request.Context(), key, window)
		if err != nil {
			log.Warn().Err(err).Str("route", name).Msg("rate limit counter unavailable")
			c.Next()
			return
		}

		if count > limit {
			tooManyRequests(c)
			return
		}

		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"message": "rate limit exceeded",
	})
}
