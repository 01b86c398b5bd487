// internal/handlers/analytics.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/services"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

// AnalyticsHandler tracks client events and backs the admin dashboard
// charts.
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

type trackEventRequest struct {
	EventType  models.EventType       `json:"event_type" binding:"required"`
	PropertyID *string                `json:"property_id,omitempty"`
	Page       string                 `json:"page,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// optionalUserID resolves the authenticated user for event attribution.
// Anonymous traffic gets nil.
func optionalUserID(c *gin.Context) *uuid.UUID {
	raw, ok := utils.GetUserIDFromContext(c)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// dateRange reads start/end query params, defaulting to the last 30 days.
// The end bound is exclusive.
func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	end := time.Now().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -30)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequestResponse(c, "start must be YYYY-MM-DD", nil)
			return start, end, false
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequestResponse(c, "end must be YYYY-MM-DD", nil)
			return start, end, false
		}
		end = parsed.AddDate(0, 0, 1)
	}

	if !start.Before(end) {
		utils.BadRequestResponse(c, "start must be before end", nil)
		return start, end, false
	}

	return start, end, true
}

// POST /events tracks a client-side event, fire-and-forget.
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var req trackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	switch req.EventType {
	case models.EventPageView, models.EventPropertyView, models.EventSearch, models.EventContactSubmit:
	default:
		utils.BadRequestResponse(c, "Unknown event type", nil)
		return
	}

	h.analyticsService.LogEvent(req.EventType, optionalUserID(c), req.PropertyID, req.Page, req.Metadata)

	c.Status(http.StatusAccepted)
}

// GET /admin/analytics/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetDashboardSummary()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to compute summary")
		return
	}

	utils.SuccessResponse(c, summary)
}

// GET /admin/analytics/views-over-time
func (h *AnalyticsHandler) GetViewsOverTime(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	rows, err := h.analyticsService.ViewsOverTime(start, end)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to aggregate views")
		return
	}

	utils.SuccessResponse(c, rows)
}

// GET /admin/analytics/activity-over-time
func (h *AnalyticsHandler) GetActivityOverTime(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	rows, err := h.analyticsService.ActivityOverTime(start, end)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to aggregate activity")
		return
	}

	utils.SuccessResponse(c, rows)
}

// GET /admin/analytics/top-properties
func (h *AnalyticsHandler) GetTopProperties(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	rows, err := h.analyticsService.TopPropertiesByViews(start, end, limit)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to rank properties")
		return
	}

	utils.SuccessResponse(c, rows)
}

// GET /admin/analytics/funnel
func (h *AnalyticsHandler) GetConversionFunnel(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	funnel, err := h.analyticsService.ConversionFunnel(start, end)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to compute funnel")
		return
	}

	utils.SuccessResponse(c, funnel)
}

// GET /admin/analytics/events
func (h *AnalyticsHandler) GetRecentEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}

	events, err := h.analyticsService.RecentEvents(limit)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch events")
		return
	}

	utils.SuccessResponse(c, events)
}

// GET /admin/analytics/export
func (h *AnalyticsHandler) ExportEvents(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	data, err := h.analyticsService.EventsCSV(start, end)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to export events")
		return
	}

	filename := "analytics_" + start.Format("20060102") + "_" + end.AddDate(0, 0, -1).Format("20060102") + ".csv"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}
