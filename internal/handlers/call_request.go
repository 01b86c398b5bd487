// internal/handlers/call_request.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/services"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

type CallRequestHandler struct {
	callRequestService *services.CallRequestService
	analyticsService   *services.AnalyticsService
}

func NewCallRequestHandler(callRequestService *services.CallRequestService, analyticsService *services.AnalyticsService) *CallRequestHandler {
	return &CallRequestHandler{
		callRequestService: callRequestService,
		analyticsService:   analyticsService,
	}
}

// POST /call-requests
func (h *CallRequestHandler) Create(c *gin.Context) {
	var req services.CallRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	callRequest, err := h.callRequestService.Create(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to submit call request")
		return
	}

	h.analyticsService.LogEvent(models.EventContactSubmit, optionalUserID(c), nil, c.FullPath(), nil)

	utils.CreatedResponse(c, callRequest)
}
