package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"address-backend/internal/authz"
	a "address-backend/internal/domains/address"
	"address-backend/internal/shared/response"
)

// AddressHandler owns the HTTP surface of the address domain. Per-route
// store-failure statuses (422 on create, 502 on reads, 500 on the admin
// listing, 401 on delete) are a preserved compatibility quirk, not an
// accident; see DESIGN.md before unifying them.
type AddressHandler struct {
	service  a.Service
	pageSize int
}

func NewAddressHandler(service a.Service, pageSize int) *AddressHandler {
	return &AddressHandler{
		service:  service,
		pageSize: pageSize,
	}
}

// Status handles GET /address/status
func (h *AddressHandler) Status(c *gin.Context) {
	response.Message(c, http.StatusOK, "System running...")
}

// ListForUser handles GET /address
func (h *AddressHandler) ListForUser(c *gin.Context) {
	publicID, err := authz.CallerID(c)
	if err != nil {
		response.Message(c, http.StatusUnauthorized, "access denied")
		return
	}

	addresses, err := h.service.ListForOwner(c.Request.Context(), publicID)
	if err != nil {
		if a.IsNotFound(err) {
			response.Message(c, http.StatusNotFound, a.ErrorMessage(err))
			return
		}
		log.Error().Err(err).Msg("address listing failed")
		response.Message(c, http.StatusBadGateway, a.ErrorMessage(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// Create handles POST /address
func (h *AddressHandler) Create(c *gin.Context) {
	publicID, err := authz.CallerID(c)
	if err != nil {
		response.Message(c, http.StatusUnauthorized, "access denied")
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Message(c, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	addressID, err := h.service.Create(c.Request.Context(), publicID, payload)
	if err != nil {
		if a.IsValidation(err) {
			response.SchemaViolation(c, a.ErrorMessage(err))
			return
		}
		log.Error().Err(err).Msg("address create failed")
		response.Message(c, http.StatusUnprocessableEntity, "something went wrong at our end")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "address created successfully",
		"address_id": addressID,
	})
}

// GetOne handles GET /address/:address_id
func (h *AddressHandler) GetOne(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), pathAddressID(c))
	if err != nil {
		if a.IsNotFound(err) {
			response.Message(c, http.StatusNotFound, a.ErrorMessage(err))
			return
		}
		log.Error().Err(err).Msg("address fetch failed")
		response.Message(c, http.StatusBadGateway, a.ErrorMessage(err))
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Delete handles DELETE /address/:address_id. A miss never reveals whether
// the address exists for someone else, so every failure is a 401.
func (h *AddressHandler) Delete(c *gin.Context) {
	publicID, err := authz.CallerID(c)
	if err != nil {
		response.Message(c, http.StatusUnauthorized, "access denied")
		return
	}

	if err := h.service.Delete(c.Request.Context(), pathAddressID(c), publicID); err != nil {
		if a.IsStoreFailure(err) {
			log.Error().Err(err).Msg("address delete failed")
		}
		response.Message(c, http.StatusUnauthorized, "address not deleted")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCountries handles GET /address/countries
func (h *AddressHandler) ListCountries(c *gin.Context) {
	countries, err := h.service.Countries(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("country listing failed")
		response.Message(c, http.StatusInternalServerError, a.ErrorMessage(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// ListAllAdmin handles GET /address/admin/address?page=N
func (h *AddressHandler) ListAllAdmin(c *gin.Context) {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	addresses, total, err := h.service.ListAll(c.Request.Context(), page, h.pageSize)
	if err != nil {
		if a.IsNotFound(err) {
			response.Message(c, http.StatusNotFound, a.ErrorMessage(err))
			return
		}
		log.Error().Err(err).Msg("admin address listing failed")
		response.Message(c, http.StatusInternalServerError, a.ErrorMessage(err))
		return
	}

	output := gin.H{
		"addresses":     addresses,
		"total_records": total,
	}
	if page*h.pageSize < total {
		output["next_url"] = fmt.Sprintf("/address/admin/address?page=%d", page+1)
	}
	if page > 1 {
		output["prev_url"] = fmt.Sprintf("/address/admin/address?page=%d", page-1)
	}

	c.JSON(http.StatusOK, output)
}

// RateLimited handles GET /address/admin/ratelimited. The route's limit is
// zero, so the limiter answers 429 before this ever runs.
func (h *AddressHandler) RateLimited(c *gin.Context) {
	response.Message(c, http.StatusOK, "should never see this")
}

const addressIDKey = "valid_address_id"

// RequireAddressID validates the path id before any limiter or auth gate
// runs. A non-UUID segment is an unknown resource, matching the catch-all:
// it needs no token and must not burn a rate budget.
func RequireAddressID() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("address_id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			response.AbortMessage(c, http.StatusNotFound, fmt.Sprintf("resource [%s] not found", idStr))
			return
		}
		c.Set(addressIDKey, id.String())
		c.Next()
	}
}

// pathAddressID returns the id validated by RequireAddressID.
func pathAddressID(c *gin.Context) string {
	return c.GetString(addressIDKey)
}
