// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

type SettingsService struct {
	db *gorm.DB
}

type UpdateSettingRequest struct {
	Value       map[string]interface{} `json:"value" validate:"required"`
	Description string                 `json:"description,omitempty"`
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetSettings returns all settings grouped by category.
func (s *SettingsService) GetSettings() (map[string][]models.Setting, error) {
	var settings []models.Setting
	if err := s.db.Order("category, key").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	grouped := make(map[string][]models.Setting)
	for _, setting := range settings {
		grouped[setting.Category] = append(grouped[setting.Category], setting)
	}

	return grouped, nil
}

func (s *SettingsService) GetSetting(category, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.Where("category = ? AND key = ?", category, key).
		First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("setting not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &setting, nil
}

func (s *SettingsService) UpdateSetting(category, key string, req *UpdateSettingRequest, updatedBy uuid.UUID) (*models.Setting, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	setting, err := s.GetSetting(category, key)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"value":      models.JSONB(req.Value),
		"updated_by": updatedBy,
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if err := s.db.Model(setting).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}

	return setting, nil
}
