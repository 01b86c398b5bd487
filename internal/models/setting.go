// internal/models/setting.go
package models

import "github.com/google/uuid"

type Setting struct {
	BaseModel
	Category    string     `json:"category" gorm:"size:50;not null;index"`
	Key         string     `json:"key" gorm:"size:100;not null;index"`
	Value       JSONB      `json:"value" gorm:"type:jsonb;not null"`
	DataType    string     `json:"data_type" gorm:"size:20;not null"`
	Description string     `json:"description" gorm:"type:text"`
	UpdatedBy   *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
}
