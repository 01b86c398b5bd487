// internal/services/property_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plotvista/plotvista-backend/internal/models"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

func validPropertyRequest() *PropertyRequest {
	return &PropertyRequest{
		ID:    "PLOT001",
		Title: "Corner plot near the lake",
		Type:  models.PropertyTypeResidential,
		Price: models.Price{Amount: 2500000, Currency: "INR"},
		Dimensions: models.Dimensions{
			AreaSqFt: 2400,
		},
		Location: models.Location{
			City:  "Bengaluru",
			State: "Karnataka",
		},
	}
}

func TestPropertyRequestValidation(t *testing.T) {
	assert.NoError(t, utils.ValidateStruct(validPropertyRequest()))
}

func TestPropertyRequestRejectsMissingTitle(t *testing.T) {
	req := validPropertyRequest()
	req.Title = ""

	err := utils.ValidateStruct(req)
	assert.Error(t, err)

	errs := utils.GetValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
}

func TestPropertyRequestRejectsShortTitle(t *testing.T) {
	req := validPropertyRequest()
	req.Title = "ab"

	assert.Error(t, utils.ValidateStruct(req))
}

func TestPropertyRequestRejectsBadPlotCode(t *testing.T) {
	req := validPropertyRequest()
	req.ID = "plot 1"

	assert.Error(t, utils.ValidateStruct(req))
}

func TestPropertyRequestRejectsMissingType(t *testing.T) {
	req := validPropertyRequest()
	req.Type = ""

	assert.Error(t, utils.ValidateStruct(req))
}

func fullPropertyRequest() *PropertyRequest {
	roadWidth := 9.0
	far := 1.5
	height := 12.0
	parking := 2
	yes := true

	req := validPropertyRequest()
	req.Description = "South facing corner plot"
	req.Availability = models.AvailabilitySold
	req.Contact = models.Contact{Phone: "+919876543210"}
	req.Features = []string{"corner"}
	req.Amenities = []string{"park"}
	req.Highlights = []string{"lake view"}
	req.Tags = []string{"premium"}
	req.Images = []string{"https://cdn.example.com/a.jpg"}
	req.Documents = []models.Document{{Name: "Khata", URL: "https://cdn.example.com/k.pdf"}}
	req.Zoning = "residential"
	req.SoilType = "red"
	req.RoadWidth = &roadWidth
	req.Facing = "West"
	req.Slope = "flat"
	req.WaterTable = "40ft"
	req.Electricity = &yes
	req.WaterSupply = &yes
	req.Sewage = &yes
	req.Internet = &yes
	req.Security = &yes
	req.ParkingSpaces = &parking
	req.ConstructionAllowed = &yes
	req.FloorAreaRatio = &far
	req.BuildingHeight = &height
	req.Setback = map[string]interface{}{"front": 10}
	req.EnvironmentalFactors = map[string]interface{}{"flood_risk": "low"}
	req.InvestmentPotential = map[string]interface{}{"appreciation": "high"}
	req.LegalStatus = map[string]interface{}{"clear_title": true}
	req.Infrastructure = map[string]interface{}{"metro": "planned"}
	req.FuturePlans = map[string]interface{}{"ring_road": "2027"}
	req.MarketData = map[string]interface{}{"rate_per_sqft": 5200}
	return req
}

func TestBuildPropertyUpdatesCoversEveryField(t *testing.T) {
	updates, err := buildPropertyUpdates(fullPropertyRequest())
	assert.NoError(t, err)

	columns := []string{
		"title", "description", "type", "availability",
		"dimensions", "location", "price", "contact",
		"features", "amenities", "highlights", "tags", "images", "documents",
		"zoning", "soil_type", "road_width", "facing", "slope", "water_table",
		"electricity", "water_supply", "sewage", "internet", "security",
		"parking_spaces", "construction_allowed",
		"floor_area_ratio", "building_height",
		"setback", "environmental_factors", "investment_potential",
		"legal_status", "infrastructure", "future_plans", "market_data",
	}
	for _, column := range columns {
		assert.Contains(t, updates, column)
	}
	assert.Len(t, updates, len(columns))
}

func TestBuildPropertyUpdatesKeepsExplicitFalseAndZero(t *testing.T) {
	no := false
	zero := 0.0
	req := &PropertyRequest{
		Title:       "Corner plot near the lake",
		Type:        models.PropertyTypeResidential,
		Electricity: &no,
		RoadWidth:   &zero,
	}

	updates, err := buildPropertyUpdates(req)
	assert.NoError(t, err)
	assert.Equal(t, false, updates["electricity"])
	assert.Equal(t, 0.0, updates["road_width"])
}

func TestBuildPropertyUpdatesSkipsUnsetFields(t *testing.T) {
	updates, err := buildPropertyUpdates(&PropertyRequest{Title: "Corner plot near the lake"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"title": "Corner plot near the lake"}, updates)
}

func TestBuildPropertyUpdatesRejectsInvalidType(t *testing.T) {
	_, err := buildPropertyUpdates(&PropertyRequest{Type: models.PropertyType("castle")})
	assert.Error(t, err)
}

func TestSortExprsCoverAllSortKeys(t *testing.T) {
	keys := []string{
		utils.SortPriceAsc, utils.SortPriceDesc,
		utils.SortSizeAsc, utils.SortSizeDesc,
		utils.SortNewest, utils.SortOldest,
	}

	for _, key := range keys {
		expr, ok := sortExprs[key]
		assert.True(t, ok, key)
		assert.NotEmpty(t, expr, key)
	}
}
