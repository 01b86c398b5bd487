// internal/services/analytics_service.go
package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/plotvista/plotvista-backend/internal/metrics"
	"github.com/plotvista/plotvista-backend/internal/models"
)

type AnalyticsService struct {
	db *gorm.DB
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type PropertyViewCount struct {
	PropertyID string `json:"property_id"`
	Title      string `json:"title"`
	Views      int64  `json:"views"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

type DashboardSummary struct {
	TotalProperties   int64 `json:"total_properties"`
	ActiveProperties  int64 `json:"active_properties"`
	TotalViews        int64 `json:"total_views"`
	TotalCallRequests int64 `json:"total_call_requests"`
	TotalUsers        int64 `json:"total_users"`
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// LogEvent records an event without blocking the request path. Failures
// are logged and dropped; analytics never break a user-facing call.
func (s *AnalyticsService) LogEvent(eventType models.EventType, userID *uuid.UUID, propertyID *string, page string, metadata map[string]interface{}) {
	event := &models.AnalyticsEvent{
		EventType:  eventType,
		UserID:     userID,
		PropertyID: propertyID,
		Page:       page,
		Metadata:   models.JSONB(metadata),
	}

	go func() {
		if err := s.db.Create(event).Error; err != nil {
			logrus.WithError(err).WithField("event_type", eventType).Warn("Failed to record analytics event")
		}
		if eventType == models.EventPropertyView {
			metrics.RecordPropertyView()
		}
	}()
}

// ViewsOverTime returns daily property view counts within the range.
func (s *AnalyticsService) ViewsOverTime(start, end time.Time) ([]DateCount, error) {
	return s.countsByDay(start, end, string(models.EventPropertyView))
}

// ActivityOverTime returns daily counts across all event types.
func (s *AnalyticsService) ActivityOverTime(start, end time.Time) ([]DateCount, error) {
	return s.countsByDay(start, end, "")
}

func (s *AnalyticsService) countsByDay(start, end time.Time, eventType string) ([]DateCount, error) {
	query := s.db.Model(&models.AnalyticsEvent{}).
		Select("to_char(created_at::date, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end)

	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var rows []DateCount
	if err := query.Group("created_at::date").Order("created_at::date").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate events: %w", err)
	}

	return rows, nil
}

// TopPropertiesByViews resolves the most viewed listings from the event
// stream, joined back to the property titles.
func (s *AnalyticsService) TopPropertiesByViews(start, end time.Time, limit int) ([]PropertyViewCount, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []PropertyViewCount
	err := s.db.Model(&models.AnalyticsEvent{}).
		Select("analytics_events.property_id, COALESCE(properties.title, analytics_events.property_id) AS title, COUNT(*) AS views").
		Joins("LEFT JOIN properties ON properties.id = analytics_events.property_id").
		Where("analytics_events.event_type = ?", models.EventPropertyView).
		Where("analytics_events.property_id IS NOT NULL").
		Where("analytics_events.created_at >= ? AND analytics_events.created_at < ?", start, end).
		Group("analytics_events.property_id, properties.title").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank properties: %w", err)
	}

	return rows, nil
}

// ConversionFunnel counts each stage from page view to contact.
func (s *AnalyticsService) ConversionFunnel(start, end time.Time) ([]FunnelStage, error) {
	stages := []models.EventType{
		models.EventPageView,
		models.EventPropertyView,
		models.EventContactSubmit,
	}

	funnel := make([]FunnelStage, 0, len(stages))
	for _, stage := range stages {
		var count int64
		if err := s.db.Model(&models.AnalyticsEvent{}).
			Where("event_type = ?", stage).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s events: %w", stage, err)
		}
		funnel = append(funnel, FunnelStage{Stage: string(stage), Count: count})
	}

	return funnel, nil
}

func (s *AnalyticsService) RecentEvents(limit int) ([]models.AnalyticsEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var events []models.AnalyticsEvent
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	return events, nil
}

// DashboardSummary collects the headline numbers for the admin dashboard
// in the database, not by pulling rows client-side.
func (s *AnalyticsService) GetDashboardSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	if err := s.db.Model(&models.Property{}).Count(&summary.TotalProperties).Error; err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}
	if err := s.db.Model(&models.Property{}).
		Where("status = ?", models.RecordStatusActive).
		Count(&summary.ActiveProperties).Error; err != nil {
		return nil, fmt.Errorf("failed to count active properties: %w", err)
	}
	if err := s.db.Model(&models.Property{}).
		Select("COALESCE(SUM(views), 0)").Scan(&summary.TotalViews).Error; err != nil {
		return nil, fmt.Errorf("failed to sum views: %w", err)
	}
	if err := s.db.Model(&models.CallRequest{}).Count(&summary.TotalCallRequests).Error; err != nil {
		return nil, fmt.Errorf("failed to count call requests: %w", err)
	}
	if err := s.db.Model(&models.User{}).Count(&summary.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return summary, nil
}

// EventsCSV exports the range's events for offline analysis.
func (s *AnalyticsService) EventsCSV(start, end time.Time) ([]byte, error) {
	var events []models.AnalyticsEvent
	if err := s.db.Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"id", "event_type", "user_id", "property_id", "page", "created_at"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, event := range events {
		userID := ""
		if event.UserID != nil {
			userID = event.UserID.String()
		}
		propertyID := ""
		if event.PropertyID != nil {
			propertyID = *event.PropertyID
		}
		record := []string{
			event.ID.String(),
			string(event.EventType),
			userID,
			propertyID,
			event.Page,
			strconv.FormatInt(event.CreatedAt.Unix(), 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}
