// internal/handlers/admin.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/services"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

// AdminHandler covers the back-office: property CRUD, bulk operations,
// user management, call requests and settings.
type AdminHandler struct {
	propertyService    *services.PropertyService
	userService        *services.UserService
	callRequestService *services.CallRequestService
	settingsService    *services.SettingsService
}

func NewAdminHandler(
	propertyService *services.PropertyService,
	userService *services.UserService,
	callRequestService *services.CallRequestService,
	settingsService *services.SettingsService,
) *AdminHandler {
	return &AdminHandler{
		propertyService:    propertyService,
		userService:        userService,
		callRequestService: callRequestService,
		settingsService:    settingsService,
	}
}

// GET /admin/properties
func (h *AdminHandler) ListProperties(c *gin.Context) {
	params := services.PropertySearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	// Admin sees every record state unless one is asked for
	if raw := c.Query("status"); raw != "" {
		status := models.RecordStatus(raw)
		if status != models.RecordStatusActive && status != models.RecordStatusInactive {
			utils.BadRequestResponse(c, "Invalid status: "+raw, nil)
			return
		}
		params.Status = &status
	} else {
		params.AllStatuses = true
	}

	properties, total, err := h.propertyService.GetProperties(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch properties")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(properties, total, params.PaginationParams))
}

// POST /admin/properties
func (h *AdminHandler) CreateProperty(c *gin.Context) {
	var req services.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	property, err := h.propertyService.CreateProperty(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, property)
}

// PUT /admin/properties/:id
func (h *AdminHandler) UpdateProperty(c *gin.Context) {
	id := c.Param("id")

	var req services.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	property, err := h.propertyService.UpdateProperty(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Property")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, property)
}

// DELETE /admin/properties/:id
func (h *AdminHandler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")

	if err := h.propertyService.DeleteProperty(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Property")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete property")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Property deleted", "id": id})
}

// POST /admin/properties/bulk-delete
func (h *AdminHandler) BulkDeleteProperties(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "A non-empty ids list is required", err.Error())
		return
	}

	deleted, err := h.propertyService.BulkDeleteProperties(req.IDs)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to delete properties")
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": deleted})
}

// DELETE /admin/properties
func (h *AdminHandler) DeleteAllProperties(c *gin.Context) {
	// Guard against an accidental wipe from a stray client call
	if c.Query("confirm") != "true" {
		utils.BadRequestResponse(c, "Pass confirm=true to delete all properties", nil)
		return
	}

	deleted, err := h.propertyService.DeleteAllProperties()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to delete properties")
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": deleted})
}

// PUT /admin/properties/:id/status
func (h *AdminHandler) UpdatePropertyStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status models.RecordStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Status is required", err.Error())
		return
	}

	if req.Status != models.RecordStatusActive && req.Status != models.RecordStatusInactive {
		utils.BadRequestResponse(c, "Status must be active or inactive", nil)
		return
	}

	if err := h.propertyService.SetRecordStatus(id, req.Status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Property")
			return
		}
		utils.InternalErrorResponse(c, "Failed to update status")
		return
	}

	utils.SuccessResponse(c, gin.H{"id": id, "status": req.Status})
}

// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := services.UserSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if raw := c.Query("role"); raw != "" {
		role := models.UserRole(raw)
		params.Role = &role
	}
	if raw := c.Query("status"); raw != "" {
		status := models.UserStatus(raw)
		params.Status = &status
	}

	users, total, err := h.userService.GetUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch users")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(users, total, params.PaginationParams))
}

// POST /admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, user)
}

// PUT /admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var req struct {
		Status models.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Status is required", err.Error())
		return
	}

	if err := h.userService.UpdateUserStatus(userID, req.Status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "User")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"id": userID, "status": req.Status})
}

// GET /admin/call-requests
func (h *AdminHandler) ListCallRequests(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	requests, total, err := h.callRequestService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch call requests")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(requests, total, params))
}

// GET /admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch settings")
		return
	}

	utils.SuccessResponse(c, settings)
}

// PUT /admin/settings/:category/:key
func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	userIDStr, _ := utils.GetUserIDFromContext(c)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid user ID")
		return
	}

	var req services.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	setting, err := h.settingsService.UpdateSetting(c.Param("category"), c.Param("key"), &req, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Setting")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, setting)
}
