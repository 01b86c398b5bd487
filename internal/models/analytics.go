// internal/models/analytics.go
package models

import "github.com/google/uuid"

// AnalyticsEvent is write-mostly: inserted on page views and interactions,
// read back only by the admin dashboard aggregates.
type AnalyticsEvent struct {
	BaseModel
	EventType  EventType  `json:"event_type" gorm:"type:varchar(50);not null;index:idx_analytics_events_type_created"`
	UserID     *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	PropertyID *string    `json:"property_id" gorm:"size:50;index"`
	Page       string     `json:"page" gorm:"size:255"`
	Metadata   JSONB      `json:"metadata" gorm:"type:jsonb"`
}
