// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type PropertyType string

const (
	PropertyTypeResidential  PropertyType = "residential"
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeAgricultural PropertyType = "agricultural"
	PropertyTypeIndustrial   PropertyType = "industrial"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeAgricultural, PropertyTypeIndustrial:
		return true
	}
	return false
}

// Availability is the market state of a listing shown to buyers.
type Availability string

const (
	AvailabilityAvailable     Availability = "Available"
	AvailabilitySold          Availability = "Sold"
	AvailabilityUnderContract Availability = "Under Contract"
	AvailabilityReserved      Availability = "Reserved"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilitySold, AvailabilityUnderContract, AvailabilityReserved:
		return true
	}
	return false
}

// RecordStatus is the lifecycle state of the row itself, toggled by admins.
// Kept separate from Availability so deactivating a listing does not lose
// its market state.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
	RecordStatusDeleted  RecordStatus = "deleted"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleViewer UserRole = "viewer"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type EventType string

const (
	EventPageView      EventType = "page_view"
	EventPropertyView  EventType = "property_view"
	EventSearch        EventType = "search"
	EventContactSubmit EventType = "contact_submit"
)
