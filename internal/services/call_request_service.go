// internal/services/call_request_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

// CallRequestService stores callback requests from the public contact form.
type CallRequestService struct {
	db *gorm.DB
}

type CallRequestInput struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

func NewCallRequestService(db *gorm.DB) *CallRequestService {
	return &CallRequestService{db: db}
}

func (s *CallRequestService) Create(req *CallRequestInput) (*models.CallRequest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	callRequest := &models.CallRequest{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := s.db.Create(callRequest).Error; err != nil {
		return nil, fmt.Errorf("failed to create call request: %w", err)
	}

	return callRequest, nil
}

// List returns call requests newest-first for the back-office table.
func (s *CallRequestService) List(params utils.PaginationParams) ([]models.CallRequest, int64, error) {
	query := s.db.Model(&models.CallRequest{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count call requests: %w", err)
	}

	var requests []models.CallRequest
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).
		Find(&requests).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch call requests: %w", err)
	}

	return requests, total, nil
}
