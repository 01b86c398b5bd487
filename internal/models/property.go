// internal/models/property.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Dimensions of a plot. Area is in square meters, AreaSqFt in square feet.
type Dimensions struct {
	Width    float64 `json:"width,omitempty"`
	Length   float64 `json:"length,omitempty"`
	Area     float64 `json:"area,omitempty"`
	AreaSqFt float64 `json:"areaSqFt,omitempty"`
	Units    string  `json:"units,omitempty"`
}

type Location struct {
	Latitude    float64   `json:"latitude,omitempty"`
	Longitude   float64   `json:"longitude,omitempty"`
	Locality    string    `json:"locality,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Pincode     string    `json:"pincode,omitempty"`
	Address     string    `json:"address,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

type Price struct {
	Amount       float64  `json:"amount,omitempty"`
	PerSqFt      float64  `json:"perSqFt,omitempty"`
	PerSqM       float64  `json:"perSqM,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Negotiable   bool     `json:"negotiable,omitempty"`
	PaymentTerms []string `json:"paymentTerms,omitempty"`
}

type Contact struct {
	Agent    string  `json:"agent,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Email    string  `json:"email,omitempty"`
	Company  string  `json:"company,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Reviews  int     `json:"reviews,omitempty"`
	Verified bool    `json:"verified,omitempty"`
}

type Document struct {
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
	Status string `json:"status,omitempty"`
}

type DocumentList []Document

// Property is a land plot listing. The primary key is a human-readable plot
// code ("PLOT001"), assigned when the listing is created.
type Property struct {
	ID          string       `json:"id" gorm:"primaryKey;size:50"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"type:text"`
	Type        PropertyType `json:"type" gorm:"type:varchar(20);not null;index"`

	Availability Availability `json:"availability" gorm:"type:varchar(20);default:'Available';index"`
	Status       RecordStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`

	Dimensions Dimensions `json:"dimensions" gorm:"type:jsonb"`
	Location   Location   `json:"location" gorm:"type:jsonb"`
	Price      Price      `json:"price" gorm:"type:jsonb"`
	Contact    Contact    `json:"contact" gorm:"type:jsonb"`

	Features   pq.StringArray `json:"features" gorm:"type:text[]"`
	Amenities  pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Highlights pq.StringArray `json:"highlights" gorm:"type:text[]"`
	Tags       pq.StringArray `json:"tags" gorm:"type:text[]"`
	Images     pq.StringArray `json:"images" gorm:"type:text[]"`
	Documents  DocumentList   `json:"documents" gorm:"type:jsonb"`

	// Plot attributes
	Zoning              string  `json:"zoning,omitempty" gorm:"size:100"`
	SoilType            string  `json:"soil_type,omitempty" gorm:"size:100"`
	RoadWidth           float64 `json:"road_width,omitempty"`
	Facing              string  `json:"facing,omitempty" gorm:"size:50"`
	Slope               string  `json:"slope,omitempty" gorm:"size:50"`
	WaterTable          string  `json:"water_table,omitempty" gorm:"size:100"`
	Electricity         bool    `json:"electricity"`
	WaterSupply         bool    `json:"water_supply"`
	Sewage              bool    `json:"sewage"`
	Internet            bool    `json:"internet"`
	Security            bool    `json:"security"`
	ParkingSpaces       int     `json:"parking_spaces"`
	ConstructionAllowed bool    `json:"construction_allowed"`
	FloorAreaRatio      float64 `json:"floor_area_ratio,omitempty"`
	BuildingHeight      float64 `json:"building_height,omitempty"`

	// Display-only nested documents, loosely typed
	Setback              JSONB `json:"setback,omitempty" gorm:"type:jsonb"`
	EnvironmentalFactors JSONB `json:"environmental_factors,omitempty" gorm:"type:jsonb"`
	InvestmentPotential  JSONB `json:"investment_potential,omitempty" gorm:"type:jsonb"`
	LegalStatus          JSONB `json:"legal_status,omitempty" gorm:"type:jsonb"`
	Infrastructure       JSONB `json:"infrastructure,omitempty" gorm:"type:jsonb"`
	FuturePlans          JSONB `json:"future_plans,omitempty" gorm:"type:jsonb"`
	MarketData           JSONB `json:"market_data,omitempty" gorm:"type:jsonb"`

	Views int64 `json:"views" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_properties_created_at,sort:desc"`
	UpdatedAt time.Time `json:"updated_at"`
}

func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(dest interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

func (d Dimensions) Value() (driver.Value, error)  { return jsonbValue(d) }
func (d *Dimensions) Scan(value interface{}) error { return jsonbScan(d, value) }

func (l Location) Value() (driver.Value, error)  { return jsonbValue(l) }
func (l *Location) Scan(value interface{}) error { return jsonbScan(l, value) }

func (p Price) Value() (driver.Value, error)  { return jsonbValue(p) }
func (p *Price) Scan(value interface{}) error { return jsonbScan(p, value) }

func (c Contact) Value() (driver.Value, error)  { return jsonbValue(c) }
func (c *Contact) Scan(value interface{}) error { return jsonbScan(c, value) }

func (d DocumentList) Value() (driver.Value, error) {
	if d == nil {
		return jsonbValue([]Document{})
	}
	return jsonbValue(d)
}
func (d *DocumentList) Scan(value interface{}) error { return jsonbScan(d, value) }

// HasCoordinates reports whether the listing carries a usable map position.
func (p *Property) HasCoordinates() bool {
	return p.Location.Latitude != 0 || p.Location.Longitude != 0
}
