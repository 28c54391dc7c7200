package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"address-backend/internal/authz"
	"address-backend/internal/domains/address/handler"
	"address-backend/internal/shared/middleware"
	"address-backend/pkg/container"
)

// Access levels checked by the external access-control service.
const (
	levelUser  = 10
	levelAdmin = 5
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.RequireJSON(),
	)

	h := c.AddressHandler
	limit := func(name string, limit int64, window time.Duration) gin.HandlerFunc {
		return middleware.RateLimit(c.Limiter, name, limit, window)
	}
	gate := func(level int) gin.HandlerFunc {
		return authz.RequireAccessLevel(c.AccessClient, level)
	}

	addr := router.Group("/address")
	{
		addr.GET("/status", limit("status", 100, time.Hour), h.Status)
		addr.GET("", limit("list", 20, time.Hour), gate(levelUser), h.ListForUser)
		addr.POST("", limit("create", 10, time.Hour), gate(levelUser), h.Create)
		addr.GET("/countries", limit("countries", 100, time.Hour), h.ListCountries)

		addr.GET("/admin/address", limit("admin_list", 100, time.Hour), gate(levelAdmin), h.ListAllAdmin)
		// Gate first here: the zero limit exists to smoke-test the
		// limiter for authenticated admins.
		addr.GET("/admin/ratelimited", gate(levelAdmin), limit("admin_ratelimited", 0, time.Minute), h.RateLimited)

		// Id shape first: a non-UUID segment answers the catch-all 404
		// before any budget or token is consumed.
		addr.GET("/:address_id", handler.RequireAddressID(), limit("get_one", 100, time.Hour), gate(levelUser), h.GetOne)
		addr.DELETE("/:address_id", handler.RequireAddressID(), limit("delete", 10, time.Hour), gate(levelUser), h.Delete)
	}

	router.NoRoute(notFoundHandler)

	return router
}

// notFoundHandler answers the catch-all contract: anything not routed under
// /address reports the leftover resource name.
func notFoundHandler(c *gin.Context) {
	resource := strings.TrimPrefix(c.Request.URL.Path, "/address/")
	resource = strings.Trim(resource, "/")
	c.JSON(http.StatusNotFound, gin.H{
		"message": fmt.Sprintf("resource [%s] not found", resource),
	})
}
