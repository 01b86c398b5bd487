// internal/handlers/geocode.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/plotvista/plotvista-backend/internal/services"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

type GeocodeHandler struct {
	geocodingService *services.GeocodingService
}

func NewGeocodeHandler(geocodingService *services.GeocodingService) *GeocodeHandler {
	return &GeocodeHandler{
		geocodingService: geocodingService,
	}
}

// GET /geocode?q=place
func (h *GeocodeHandler) ForwardGeocode(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.BadRequestResponse(c, "A query is required", nil)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		limit = 5
	}

	results, err := h.geocodingService.ForwardGeocode(c.Request.Context(), query, limit)
	if err != nil {
		utils.BadGatewayResponse(c, "Geocoding service unavailable")
		return
	}

	utils.SuccessResponse(c, results)
}
