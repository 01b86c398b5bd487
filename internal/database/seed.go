// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/plotvista/plotvista-backend/internal/models"
)

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Email:    "admin@plotvista.com",
			FullName: "System Administrator",
			Role:     models.UserRoleAdmin,
			Status:   models.UserStatusActive,
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	// Create default platform settings
	defaultSettings := []models.Setting{
		{
			Category:    "general",
			Key:         "platform_name",
			Value:       models.JSONB{"value": "PlotVista"},
			DataType:    "string",
			Description: "Platform name displayed to users",
		},
		{
			Category:    "listings",
			Key:         "page_size",
			Value:       models.JSONB{"value": 12},
			DataType:    "integer",
			Description: "Default number of listings per page",
		},
		{
			Category:    "listings",
			Key:         "max_upload_size_mb",
			Value:       models.JSONB{"value": 10},
			DataType:    "integer",
			Description: "Maximum file size in MB for property images",
		},
		{
			Category:    "contact",
			Key:         "office_phone",
			Value:       models.JSONB{"value": "+91 98765 43210"},
			DataType:    "string",
			Description: "Office phone shown on the contact page",
		},
	}

	for _, setting := range defaultSettings {
		var count int64
		db.Model(&models.Setting{}).Where("category = ? AND key = ?", setting.Category, setting.Key).Count(&count)

		if count == 0 {
			if err := db.Create(&setting).Error; err != nil {
				log.Printf("Warning: Failed to create setting %s.%s: %v", setting.Category, setting.Key, err)
			}
		}
	}

	// Seed sample listings when the table is empty
	var propertyCount int64
	db.Model(&models.Property{}).Count(&propertyCount)
	if propertyCount == 0 {
		for _, property := range sampleProperties() {
			if err := db.Create(&property).Error; err != nil {
				log.Printf("Warning: Failed to seed property %s: %v", property.ID, err)
			}
		}
		log.Println("Sample properties seeded")
	}

	log.Println("Initial data seeding completed")
	return nil
}

func sampleProperties() []models.Property {
	return []models.Property{
		{
			ID:           "PLOT001",
			Title:        "Premium Residential Plot in Andheri West",
			Description: "Corner plot in a gated layout, ready for construction with all approvals in place.",
			Type:         models.PropertyTypeResidential,
			Availability: models.AvailabilityAvailable,
			Status:       models.RecordStatusActive,
			Dimensions: models.Dimensions{
				Width: 30, Length: 50, Area: 1500, AreaSqFt: 16146,
			},
			Location: models.Location{
				Latitude: 19.0760, Longitude: 72.8774,
				Locality: "Andheri West", City: "Mumbai", State: "Maharashtra",
				Pincode:     "400058",
				Address:     "Plot No. 123, Sector 7, Andheri West, Mumbai - 400058",
				Coordinates: []float64{19.0760, 72.8774},
			},
			Price: models.Price{
				Amount: 25000000, PerSqFt: 16667, PerSqM: 154321,
				Currency: "INR", Negotiable: true,
				PaymentTerms: []string{"20% Booking Amount", "80% on Registration"},
			},
			Features:  []string{"Corner Plot", "Main Road Facing", "Gated Community", "Near Metro Station"},
			Amenities: []string{"Metro Station (500m)", "Shopping Mall (1km)", "Hospital (2km)"},
			Documents: models.DocumentList{
				{Name: "Clear Title", Status: "Verified"},
				{Name: "Approved Layout", Status: "Verified"},
			},
			Contact: models.Contact{
				Agent: "Rajesh Sharma", Phone: "+91 98200 12345",
				Email: "rajesh@plotvista.com", Company: "PlotVista Realty",
				Rating: 4.7, Reviews: 112, Verified: true,
			},
			Electricity: true, WaterSupply: true, Security: true,
			ParkingSpaces: 2, ConstructionAllowed: true,
			Zoning: "R1", Facing: "East",
		},
		{
			ID:           "PLOT002",
			Title:        "Commercial Plot on Sarjapur Road",
			Description: "High-visibility commercial plot suitable for retail or office development.",
			Type:         models.PropertyTypeCommercial,
			Availability: models.AvailabilityReserved,
			Status:       models.RecordStatusActive,
			Dimensions: models.Dimensions{
				Width: 40, Length: 60, Area: 2400, AreaSqFt: 25833,
			},
			Location: models.Location{
				Latitude: 12.9116, Longitude: 77.6846,
				Locality: "Sarjapur Road", City: "Bengaluru", State: "Karnataka",
				Pincode:     "560035",
				Coordinates: []float64{12.9116, 77.6846},
			},
			Price: models.Price{
				Amount: 48000000, PerSqFt: 18580, Currency: "INR",
			},
			Features:  []string{"Main Road Facing", "Wide Frontage"},
			Amenities: []string{"IT Park (2km)", "Airport (35km)"},
			Contact: models.Contact{
				Agent: "Priya Nair", Phone: "+91 99450 67890",
				Email: "priya@plotvista.com", Company: "PlotVista Realty",
				Rating: 4.5, Reviews: 64, Verified: true,
			},
			Electricity: true, WaterSupply: true,
			Zoning: "C2", Facing: "North",
		},
		{
			ID:           "PLOT003",
			Title:        "Agricultural Land near Nashik",
			Description: "Fertile agricultural land with bore well and year-round water table.",
			Type:         models.PropertyTypeAgricultural,
			Availability: models.AvailabilityAvailable,
			Status:       models.RecordStatusActive,
			Dimensions: models.Dimensions{
				Area: 20234, AreaSqFt: 217800,
			},
			Location: models.Location{
				Latitude: 19.9975, Longitude: 73.7898,
				Locality: "Igatpuri", City: "Nashik", State: "Maharashtra",
				Pincode:     "422403",
				Coordinates: []float64{19.9975, 73.7898},
			},
			Price: models.Price{
				Amount: 9000000, Currency: "INR", Negotiable: true,
			},
			Features:   []string{"Bore Well", "Road Access", "Fenced"},
			WaterTable: "15 ft",
			SoilType:   "Black Cotton",
			Contact: models.Contact{
				Agent: "Sunil Patil", Phone: "+91 98501 23456",
				Email: "sunil@plotvista.com", Company: "PlotVista Realty",
				Rating: 4.2, Reviews: 31, Verified: false,
			},
		},
	}
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
