// internal/handlers/property.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/services"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

// PropertyHandler serves the public discovery surface: listing, search,
// detail, nearby lookups and the aggregate feeds.
type PropertyHandler struct {
	propertyService  *services.PropertyService
	analyticsService *services.AnalyticsService
}

func NewPropertyHandler(propertyService *services.PropertyService, analyticsService *services.AnalyticsService) *PropertyHandler {
	return &PropertyHandler{
		propertyService:  propertyService,
		analyticsService: analyticsService,
	}
}

// ListProperties handles GET /properties with the full filter set.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	params := services.PropertySearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	for _, raw := range splitCSV(c.Query("type")) {
		propertyType := models.PropertyType(raw)
		if !propertyType.Valid() {
			utils.BadRequestResponse(c, "Invalid property type: "+raw, nil)
			return
		}
		params.Types = append(params.Types, propertyType)
	}

	for _, raw := range splitCSV(c.Query("availability")) {
		availability := models.Availability(raw)
		if !availability.Valid() {
			utils.BadRequestResponse(c, "Invalid availability: "+raw, nil)
			return
		}
		params.Availability = append(params.Availability, availability)
	}

	var err error
	if params.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		utils.BadRequestResponse(c, "min_price must be a number", nil)
		return
	}
	if params.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		utils.BadRequestResponse(c, "max_price must be a number", nil)
		return
	}
	if params.MinArea, err = queryFloat(c, "min_area"); err != nil {
		utils.BadRequestResponse(c, "min_area must be a number", nil)
		return
	}
	if params.MaxArea, err = queryFloat(c, "max_area"); err != nil {
		utils.BadRequestResponse(c, "max_area must be a number", nil)
		return
	}

	params.City = c.Query("city")
	params.Features = splitCSV(c.Query("features"))

	if params.Sort != "" && !utils.ValidSortKey(params.Sort) {
		utils.BadRequestResponse(c, "Invalid sort key: "+params.Sort, nil)
		return
	}

	properties, total, err := h.propertyService.GetProperties(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch properties")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(properties, total, params.PaginationParams))
}

// GetProperty handles GET /properties/:id.
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")

	property, err := h.propertyService.GetPropertyByID(id)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch property")
		return
	}
	if property == nil {
		utils.NotFoundResponse(c, "Property")
		return
	}

	h.analyticsService.LogEvent(models.EventPropertyView, optionalUserID(c), &property.ID, c.FullPath(), nil)

	utils.SuccessResponse(c, property)
}

// SearchProperties handles GET /properties/search?q=term.
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		utils.BadRequestResponse(c, "Search term is required", nil)
		return
	}

	params := utils.GetPaginationParams(c)
	properties, total, err := h.propertyService.SearchProperties(term, params)
	if err != nil {
		utils.InternalErrorResponse(c, "Search failed")
		return
	}

	h.analyticsService.LogEvent(models.EventSearch, optionalUserID(c), nil, c.FullPath(), map[string]interface{}{
		"query":   term,
		"results": total,
	})

	utils.PaginatedResponse(c, utils.CreatePaginationResult(properties, total, params))
}

// SearchByFeatures handles GET /properties/by-features?features=a,b.
func (h *PropertyHandler) SearchByFeatures(c *gin.Context) {
	features := splitCSV(c.Query("features"))
	if len(features) == 0 {
		utils.BadRequestResponse(c, "At least one feature is required", nil)
		return
	}

	params := utils.GetPaginationParams(c)
	properties, total, err := h.propertyService.SearchPropertiesByFeatures(features, params)
	if err != nil {
		utils.InternalErrorResponse(c, "Search failed")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(properties, total, params))
}

// GetByLocation handles GET /properties/nearby?lat=&lng=&radius=.
func (h *PropertyHandler) GetByLocation(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		utils.BadRequestResponse(c, "lat must be a latitude between -90 and 90", nil)
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		utils.BadRequestResponse(c, "lng must be a longitude between -180 and 180", nil)
		return
	}

	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "10"), 64)
	if err != nil || radius <= 0 || radius > 500 {
		utils.BadRequestResponse(c, "radius must be a distance in km up to 500", nil)
		return
	}

	params := utils.GetPaginationParams(c)
	properties, total, err := h.propertyService.GetPropertiesByLocation(lat, lng, radius, params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch nearby properties")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(properties, total, params))
}

// IncrementViews handles POST /properties/:id/views.
func (h *PropertyHandler) IncrementViews(c *gin.Context) {
	id := c.Param("id")

	views, err := h.propertyService.IncrementViews(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Property")
			return
		}
		utils.InternalErrorResponse(c, "Failed to record view")
		return
	}

	h.analyticsService.LogEvent(models.EventPropertyView, optionalUserID(c), &id, c.FullPath(), nil)

	utils.SuccessResponse(c, gin.H{"id": id, "views": views})
}

// GetSimilar handles GET /properties/:id/similar.
func (h *PropertyHandler) GetSimilar(c *gin.Context) {
	id := c.Param("id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if err != nil || limit < 1 || limit > 20 {
		limit = 4
	}

	similar, err := h.propertyService.GetSimilarProperties(id, limit)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch similar properties")
		return
	}

	utils.SuccessResponse(c, similar)
}

// GetStats handles GET /properties/stats.
func (h *PropertyHandler) GetStats(c *gin.Context) {
	stats, err := h.propertyService.GetPropertyStats(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to compute stats")
		return
	}

	utils.SuccessResponse(c, stats)
}

// GetSuggestedLocations handles GET /properties/suggested-locations.
func (h *PropertyHandler) GetSuggestedLocations(c *gin.Context) {
	locations, err := h.propertyService.GetSuggestedLocations(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch locations")
		return
	}

	utils.SuccessResponse(c, locations)
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
