// internal/services/property_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/plotvista/plotvista-backend/internal/cache"
	"github.com/plotvista/plotvista-backend/internal/database"
	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

const (
	statsCacheKey     = "properties:stats"
	locationsCacheKey = "properties:suggested-locations"
	statsCacheTTL     = 5 * time.Minute
	locationsCacheTTL = 10 * time.Minute
)

type PropertyService struct {
	db             *gorm.DB
	cacheClient    *cache.Client
	storageService *StorageService
}

// PropertyRequest is the canonical create/update payload, shared by the
// admin add and edit flows so both enforce the same field set.
type PropertyRequest struct {
	ID           string              `json:"id" validate:"omitempty,plot_code"`
	Title        string              `json:"title" validate:"required,min=3,max=255"`
	Description  string              `json:"description,omitempty"`
	Type         models.PropertyType `json:"type" validate:"required"`
	Availability models.Availability `json:"availability,omitempty"`

	Dimensions models.Dimensions `json:"dimensions,omitempty"`
	Location   models.Location   `json:"location,omitempty"`
	Price      models.Price      `json:"price,omitempty"`
	Contact    models.Contact    `json:"contact,omitempty"`

	Features   []string          `json:"features,omitempty"`
	Amenities  []string          `json:"amenities,omitempty"`
	Highlights []string          `json:"highlights,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Images     []string          `json:"images,omitempty"`
	Documents  []models.Document `json:"documents,omitempty"`

	// Pointers so partial updates can tell "unset" from "set to zero/false".
	Zoning              string   `json:"zoning,omitempty"`
	SoilType            string   `json:"soil_type,omitempty"`
	RoadWidth           *float64 `json:"road_width,omitempty"`
	Facing              string   `json:"facing,omitempty"`
	Slope               string   `json:"slope,omitempty"`
	WaterTable          string   `json:"water_table,omitempty"`
	Electricity         *bool    `json:"electricity,omitempty"`
	WaterSupply         *bool    `json:"water_supply,omitempty"`
	Sewage              *bool    `json:"sewage,omitempty"`
	Internet            *bool    `json:"internet,omitempty"`
	Security            *bool    `json:"security,omitempty"`
	ParkingSpaces       *int     `json:"parking_spaces,omitempty"`
	ConstructionAllowed *bool    `json:"construction_allowed,omitempty"`
	FloorAreaRatio      *float64 `json:"floor_area_ratio,omitempty"`
	BuildingHeight      *float64 `json:"building_height,omitempty"`

	Setback              map[string]interface{} `json:"setback,omitempty"`
	EnvironmentalFactors map[string]interface{} `json:"environmental_factors,omitempty"`
	InvestmentPotential  map[string]interface{} `json:"investment_potential,omitempty"`
	LegalStatus          map[string]interface{} `json:"legal_status,omitempty"`
	Infrastructure       map[string]interface{} `json:"infrastructure,omitempty"`
	FuturePlans          map[string]interface{} `json:"future_plans,omitempty"`
	MarketData           map[string]interface{} `json:"market_data,omitempty"`
}

type PropertySearchParams struct {
	utils.PaginationParams
	Types        []models.PropertyType
	Availability []models.Availability
	Status       *models.RecordStatus
	AllStatuses  bool
	MinPrice     *float64
	MaxPrice     *float64
	MinArea      *float64
	MaxArea      *float64
	City         string
	Features     []string
}

type PropertyStats struct {
	Total          int64            `json:"total"`
	ByType         map[string]int64 `json:"by_type"`
	ByAvailability map[string]int64 `json:"by_availability"`
	AvgPrice       float64          `json:"avg_price"`
	AvgArea        float64          `json:"avg_area"`
}

// sortExprs maps the public sort keys onto SQL order expressions so sorting
// covers the whole result set, not just the fetched page.
var sortExprs = map[string]string{
	utils.SortPriceAsc:  "(price->>'amount')::numeric ASC NULLS LAST",
	utils.SortPriceDesc: "(price->>'amount')::numeric DESC NULLS LAST",
	utils.SortSizeAsc:   "(dimensions->>'areaSqFt')::numeric ASC NULLS LAST",
	utils.SortSizeDesc:  "(dimensions->>'areaSqFt')::numeric DESC NULLS LAST",
	utils.SortNewest:    "created_at DESC",
	utils.SortOldest:    "created_at ASC",
}

func NewPropertyService(db *gorm.DB, cacheClient *cache.Client, storageService *StorageService) *PropertyService {
	return &PropertyService{
		db:             db,
		cacheClient:    cacheClient,
		storageService: storageService,
	}
}

// GetProperties lists properties newest-first with all filters applied in
// the database query.
func (s *PropertyService) GetProperties(params PropertySearchParams) ([]models.Property, int64, error) {
	query := s.db.Model(&models.Property{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	} else if !params.AllStatuses {
		// Public listings never show deactivated rows
		query = query.Where("status = ?", models.RecordStatusActive)
	}

	if len(params.Types) > 0 {
		query = query.Where("type IN ?", params.Types)
	}

	if len(params.Availability) > 0 {
		query = query.Where("availability IN ?", params.Availability)
	}

	if params.MinPrice != nil {
		query = query.Where("(price->>'amount')::numeric >= ?", *params.MinPrice)
	}

	if params.MaxPrice != nil {
		query = query.Where("(price->>'amount')::numeric <= ?", *params.MaxPrice)
	}

	if params.MinArea != nil {
		query = query.Where("(dimensions->>'areaSqFt')::numeric >= ?", *params.MinArea)
	}

	if params.MaxArea != nil {
		query = query.Where("(dimensions->>'areaSqFt')::numeric <= ?", *params.MaxArea)
	}

	if params.City != "" {
		query = query.Where("location->>'city' ILIKE ?", "%"+params.City+"%")
	}

	// Conjunctive: every requested feature must be present
	for _, feature := range params.Features {
		query = query.Where("features @> ?", pq.Array([]string{feature}))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	sortExpr, ok := sortExprs[params.Sort]
	if !ok {
		sortExpr = sortExprs[utils.SortNewest]
	}
	query = query.Order(sortExpr)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return properties, total, nil
}

// GetPropertyByID returns (nil, nil) when no row matches: a missing
// listing is an expected outcome for point lookups, not a failure.
func (s *PropertyService) GetPropertyByID(id string) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &property, nil
}

// SearchProperties matches the term against any of the text fields.
func (s *PropertyService) SearchProperties(term string, params utils.PaginationParams) ([]models.Property, int64, error) {
	pattern := "%" + strings.TrimSpace(term) + "%"

	query := s.db.Model(&models.Property{}).
		Where("status = ?", models.RecordStatusActive).
		Where(
			s.db.Where("title ILIKE ?", pattern).
				Or("description ILIKE ?", pattern).
				Or("location->>'city' ILIKE ?", pattern).
				Or("location->>'locality' ILIKE ?", pattern).
				Or("location->>'state' ILIKE ?", pattern),
		)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	var properties []models.Property
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search properties: %w", err)
	}

	return properties, total, nil
}

// SearchPropertiesByFeatures returns listings carrying every given feature.
func (s *PropertyService) SearchPropertiesByFeatures(features []string, params utils.PaginationParams) ([]models.Property, int64, error) {
	query := s.db.Model(&models.Property{}).Where("status = ?", models.RecordStatusActive)

	for _, feature := range features {
		query = query.Where("features @> ?", pq.Array([]string{feature}))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feature search results: %w", err)
	}

	var properties []models.Property
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search properties by features: %w", err)
	}

	return properties, total, nil
}

// GetPropertiesByLocation filters by a bounding box around the given point.
func (s *PropertyService) GetPropertiesByLocation(lat, lng, radiusKm float64, params utils.PaginationParams) ([]models.Property, int64, error) {
	box := utils.NewBoundingBox(lat, lng, radiusKm)

	query := s.db.Model(&models.Property{}).
		Where("status = ?", models.RecordStatusActive).
		Where("(location->>'latitude')::float8 BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("(location->>'longitude')::float8 BETWEEN ? AND ?", box.MinLng, box.MaxLng)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count nearby properties: %w", err)
	}

	var properties []models.Property
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch nearby properties: %w", err)
	}

	return properties, total, nil
}

func (s *PropertyService) CreateProperty(req *PropertyRequest) (*models.Property, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Type.Valid() {
		return nil, errors.New("invalid property type")
	}

	if req.ID == "" {
		return nil, errors.New("plot code is required")
	}

	var existing models.Property
	if err := s.db.First(&existing, "id = ?", req.ID).Error; err == nil {
		return nil, fmt.Errorf("property %s already exists", req.ID)
	}

	availability := req.Availability
	if availability == "" {
		availability = models.AvailabilityAvailable
	} else if !availability.Valid() {
		return nil, errors.New("invalid availability")
	}

	property := &models.Property{
		ID:           req.ID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Availability: availability,
		Status:       models.RecordStatusActive,
		Dimensions:   req.Dimensions,
		Location:     req.Location,
		Price:        req.Price,
		Contact:      req.Contact,
		Features:     req.Features,
		Amenities:    req.Amenities,
		Highlights:   req.Highlights,
		Tags:         req.Tags,
		Images:       req.Images,
		Documents:    req.Documents,

		Zoning:              req.Zoning,
		SoilType:            req.SoilType,
		RoadWidth:           derefFloat(req.RoadWidth),
		Facing:              req.Facing,
		Slope:               req.Slope,
		WaterTable:          req.WaterTable,
		Electricity:         derefBool(req.Electricity),
		WaterSupply:         derefBool(req.WaterSupply),
		Sewage:              derefBool(req.Sewage),
		Internet:            derefBool(req.Internet),
		Security:            derefBool(req.Security),
		ParkingSpaces:       derefInt(req.ParkingSpaces),
		ConstructionAllowed: derefBool(req.ConstructionAllowed),
		FloorAreaRatio:      derefFloat(req.FloorAreaRatio),
		BuildingHeight:      derefFloat(req.BuildingHeight),

		Setback:              models.JSONB(req.Setback),
		EnvironmentalFactors: models.JSONB(req.EnvironmentalFactors),
		InvestmentPotential:  models.JSONB(req.InvestmentPotential),
		LegalStatus:          models.JSONB(req.LegalStatus),
		Infrastructure:       models.JSONB(req.Infrastructure),
		FuturePlans:          models.JSONB(req.FuturePlans),
		MarketData:           models.JSONB(req.MarketData),
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.invalidateAggregates()

	return property, nil
}

func (s *PropertyService) UpdateProperty(id string, req *PropertyRequest) (*models.Property, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("property not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates, err := buildPropertyUpdates(req)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&property).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	s.invalidateAggregates()

	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload property: %w", err)
	}
	return &property, nil
}

// buildPropertyUpdates maps every set request field onto its column so an
// edit can change anything a create can persist. Strings and enums treat ""
// as unset; booleans and zero-able numerics use pointers for presence.
func buildPropertyUpdates(req *PropertyRequest) (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Type != "" {
		if !req.Type.Valid() {
			return nil, errors.New("invalid property type")
		}
		updates["type"] = req.Type
	}
	if req.Availability != "" {
		if !req.Availability.Valid() {
			return nil, errors.New("invalid availability")
		}
		updates["availability"] = req.Availability
	}
	if req.Dimensions != (models.Dimensions{}) {
		updates["dimensions"] = req.Dimensions
	}
	if req.Location.City != "" || req.Location.Latitude != 0 || req.Location.Address != "" {
		updates["location"] = req.Location
	}
	if req.Price.Amount != 0 || req.Price.Currency != "" {
		updates["price"] = req.Price
	}
	if req.Contact != (models.Contact{}) {
		updates["contact"] = req.Contact
	}
	if req.Features != nil {
		updates["features"] = pq.StringArray(req.Features)
	}
	if req.Amenities != nil {
		updates["amenities"] = pq.StringArray(req.Amenities)
	}
	if req.Highlights != nil {
		updates["highlights"] = pq.StringArray(req.Highlights)
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.Documents != nil {
		updates["documents"] = models.DocumentList(req.Documents)
	}
	if req.Zoning != "" {
		updates["zoning"] = req.Zoning
	}
	if req.SoilType != "" {
		updates["soil_type"] = req.SoilType
	}
	if req.RoadWidth != nil {
		updates["road_width"] = *req.RoadWidth
	}
	if req.Facing != "" {
		updates["facing"] = req.Facing
	}
	if req.Slope != "" {
		updates["slope"] = req.Slope
	}
	if req.WaterTable != "" {
		updates["water_table"] = req.WaterTable
	}
	if req.Electricity != nil {
		updates["electricity"] = *req.Electricity
	}
	if req.WaterSupply != nil {
		updates["water_supply"] = *req.WaterSupply
	}
	if req.Sewage != nil {
		updates["sewage"] = *req.Sewage
	}
	if req.Internet != nil {
		updates["internet"] = *req.Internet
	}
	if req.Security != nil {
		updates["security"] = *req.Security
	}
	if req.ParkingSpaces != nil {
		updates["parking_spaces"] = *req.ParkingSpaces
	}
	if req.ConstructionAllowed != nil {
		updates["construction_allowed"] = *req.ConstructionAllowed
	}
	if req.FloorAreaRatio != nil {
		updates["floor_area_ratio"] = *req.FloorAreaRatio
	}
	if req.BuildingHeight != nil {
		updates["building_height"] = *req.BuildingHeight
	}
	if req.Setback != nil {
		updates["setback"] = models.JSONB(req.Setback)
	}
	if req.EnvironmentalFactors != nil {
		updates["environmental_factors"] = models.JSONB(req.EnvironmentalFactors)
	}
	if req.InvestmentPotential != nil {
		updates["investment_potential"] = models.JSONB(req.InvestmentPotential)
	}
	if req.LegalStatus != nil {
		updates["legal_status"] = models.JSONB(req.LegalStatus)
	}
	if req.Infrastructure != nil {
		updates["infrastructure"] = models.JSONB(req.Infrastructure)
	}
	if req.FuturePlans != nil {
		updates["future_plans"] = models.JSONB(req.FuturePlans)
	}
	if req.MarketData != nil {
		updates["market_data"] = models.JSONB(req.MarketData)
	}
	return updates, nil
}

func derefBool(v *bool) bool {
	if v != nil {
		return *v
	}
	return false
}

func derefInt(v *int) int {
	if v != nil {
		return *v
	}
	return 0
}

func derefFloat(v *float64) float64 {
	if v != nil {
		return *v
	}
	return 0
}

// DeleteProperty removes the row, then cleans up stored images best-effort.
// Row removal wins: an orphaned image is recoverable noise, an orphaned row
// pointing at deleted images is a broken listing.
func (s *PropertyService) DeleteProperty(id string) error {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("property not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&property).Error; err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	s.cleanupImages(property.Images)
	s.invalidateAggregates()

	return nil
}

// BulkDeleteProperties deletes the given rows in one transaction, then
// cleans up their stored images.
func (s *PropertyService) BulkDeleteProperties(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var properties []models.Property
	if err := s.db.Select("id", "images").Where("id IN ?", ids).Find(&properties).Error; err != nil {
		return 0, fmt.Errorf("failed to resolve properties: %w", err)
	}

	var deleted int64
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		result := tx.Where("id IN ?", ids).Delete(&models.Property{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete properties: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, property := range properties {
		s.cleanupImages(property.Images)
	}
	s.invalidateAggregates()

	return deleted, nil
}

// DeleteAllProperties wipes the collection.
func (s *PropertyService) DeleteAllProperties() (int64, error) {
	var properties []models.Property
	if err := s.db.Select("id", "images").Find(&properties).Error; err != nil {
		return 0, fmt.Errorf("failed to resolve properties: %w", err)
	}

	result := s.db.Where("id IS NOT NULL").Delete(&models.Property{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete properties: %w", result.Error)
	}

	for _, property := range properties {
		s.cleanupImages(property.Images)
	}
	s.invalidateAggregates()

	return result.RowsAffected, nil
}

// SetRecordStatus is the admin inline activate/deactivate toggle.
func (s *PropertyService) SetRecordStatus(id string, status models.RecordStatus) error {
	result := s.db.Model(&models.Property{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("property not found")
	}

	s.invalidateAggregates()
	return nil
}

// IncrementViews bumps the view counter atomically and returns the new value
// from the same UPDATE, so concurrent bumps never report a stale count.
func (s *PropertyService) IncrementViews(id string) (int64, error) {
	property := models.Property{ID: id}
	result := s.db.Model(&property).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "views"}}}).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errors.New("property not found")
	}

	return property.Views, nil
}

// GetSimilarProperties returns up to limit other listings of the same type.
func (s *PropertyService) GetSimilarProperties(id string, limit int) ([]models.Property, error) {
	property, err := s.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return []models.Property{}, nil
	}

	var similar []models.Property
	if err := s.db.Where("type = ? AND id <> ? AND status = ?",
		property.Type, id, models.RecordStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&similar).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch similar properties: %w", err)
	}

	return similar, nil
}

// GetPropertyStats aggregates in the database rather than scanning the
// table client-side.
func (s *PropertyService) GetPropertyStats(ctx context.Context) (*PropertyStats, error) {
	var cached PropertyStats
	if hit, err := s.cacheClient.Get(ctx, statsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	stats := &PropertyStats{
		ByType:         make(map[string]int64),
		ByAvailability: make(map[string]int64),
	}

	if err := s.db.Model(&models.Property{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	type groupCount struct {
		Key   string
		Count int64
	}

	var byType []groupCount
	if err := s.db.Model(&models.Property{}).
		Select("type AS key, COUNT(*) AS count").
		Group("type").Scan(&byType).Error; err != nil {
		return nil, fmt.Errorf("failed to group by type: %w", err)
	}
	for _, row := range byType {
		stats.ByType[row.Key] = row.Count
	}

	var byAvailability []groupCount
	if err := s.db.Model(&models.Property{}).
		Select("availability AS key, COUNT(*) AS count").
		Group("availability").Scan(&byAvailability).Error; err != nil {
		return nil, fmt.Errorf("failed to group by availability: %w", err)
	}
	for _, row := range byAvailability {
		stats.ByAvailability[row.Key] = row.Count
	}

	var averages struct {
		AvgPrice float64
		AvgArea  float64
	}
	if err := s.db.Model(&models.Property{}).
		Select("COALESCE(AVG((price->>'amount')::numeric), 0) AS avg_price, COALESCE(AVG((dimensions->>'areaSqFt')::numeric), 0) AS avg_area").
		Scan(&averages).Error; err != nil {
		return nil, fmt.Errorf("failed to compute averages: %w", err)
	}
	stats.AvgPrice = averages.AvgPrice
	stats.AvgArea = averages.AvgArea

	if err := s.cacheClient.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		logrus.WithError(err).Warn("Failed to cache property stats")
	}

	return stats, nil
}

// GetSuggestedLocations returns up to 10 distinct "City, State" and
// "Locality, City" combinations, resolved in the database.
func (s *PropertyService) GetSuggestedLocations(ctx context.Context) ([]string, error) {
	var cached []string
	if hit, err := s.cacheClient.Get(ctx, locationsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	type locationRow struct {
		City     string
		State    string
		Locality string
	}

	var rows []locationRow
	if err := s.db.Model(&models.Property{}).
		Select("DISTINCT location->>'city' AS city, location->>'state' AS state, location->>'locality' AS locality").
		Where("location->>'city' IS NOT NULL AND status = ?", models.RecordStatusActive).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	seen := make(map[string]bool)
	locations := make([]string, 0, 10)
	add := func(value string) {
		if len(locations) >= 10 || value == "" || seen[value] {
			return
		}
		seen[value] = true
		locations = append(locations, value)
	}

	for _, row := range rows {
		if row.City != "" && row.State != "" {
			add(row.City + ", " + row.State)
		}
		if row.Locality != "" && row.Locality != row.City {
			add(row.Locality + ", " + row.City)
		}
	}

	if err := s.cacheClient.Set(ctx, locationsCacheKey, locations, locationsCacheTTL); err != nil {
		logrus.WithError(err).Warn("Failed to cache suggested locations")
	}

	return locations, nil
}

func (s *PropertyService) cleanupImages(urls []string) {
	if s.storageService == nil {
		return
	}
	for _, url := range urls {
		if err := s.storageService.DeleteByPublicURL(url); err != nil {
			logrus.WithError(err).WithField("url", url).Warn("Failed to delete stored image, leaving orphan")
		}
	}
}

func (s *PropertyService) invalidateAggregates() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.cacheClient.Delete(ctx, statsCacheKey, locationsCacheKey); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate aggregate caches")
	}
}
