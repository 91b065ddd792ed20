package seeds

import (
	"errors"

	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/users/repositories"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAll runs every seeder in dependency order. Each seeder is idempotent,
// so running on every startup is safe.
func SeedAll(db *gorm.DB) error {
	config.Logger.Info("Starting database seeding...")

	if err := SeedAdminUser(db); err != nil {
		return err
	}
	if err := SeedDemoLocations(db); err != nil {
		return err
	}

	config.Logger.Info("Database seeding completed")
	return nil
}

// SeedAdminUser ensures an administrator account exists so the system is
// never locked out after a fresh install. Credentials come from
// ADMIN_USERNAME / ADMIN_PASSWORD, with development defaults.
func SeedAdminUser(db *gorm.DB) error {
	username := utils.GetenvDefault("ADMIN_USERNAME", "admin")

	var existing models.User
	err := db.First(&existing, "username = ?", username).Error
	if err == nil {
		config.Logger.Info("Administrator account already present", zap.String("username", username))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := repositories.HashPassword(utils.GetenvDefault("ADMIN_PASSWORD", "ChangeMe123"))
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    utils.GetenvDefault("ADMIN_EMAIL", "admin@pams.local"),
		Password: hashed,
		Role:     models.AdministratorRole,
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	config.Logger.Info("Seeded administrator account", zap.String("username", username))
	return nil
}

// SeedDemoLocations loads a small portfolio of locations and apartments for
// development environments. Skipped when any location already exists.
func SeedDemoLocations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	locations := []struct {
		city       string
		address    string
		apartments []models.Apartment
	}{
		{
			city:    "Bristol",
			address: "12 Harbourside Wharf",
			apartments: []models.Apartment{
				{Address: "Flat 1, 12 Harbourside Wharf", Beds: 2, MonthlyRent: decimal.NewFromInt(900)},
				{Address: "Flat 2, 12 Harbourside Wharf", Beds: 1, MonthlyRent: decimal.NewFromInt(750)},
			},
		},
		{
			city:    "Manchester",
			address: "4 Deansgate Square",
			apartments: []models.Apartment{
				{Address: "Unit 3, 4 Deansgate Square", Beds: 3, MonthlyRent: decimal.NewFromInt(1200)},
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, l := range locations {
			loc := models.Location{City: l.city, Address: l.address}
			if err := tx.Create(&loc).Error; err != nil {
				return err
			}
			for _, apt := range l.apartments {
				apt.LocationID = loc.ID
				if err := tx.Create(&apt).Error; err != nil {
					return err
				}
			}
			config.Logger.Info("Seeded location",
				zap.String("city", l.city),
				zap.Int("apartments", len(l.apartments)))
		}
		return nil
	})
}
