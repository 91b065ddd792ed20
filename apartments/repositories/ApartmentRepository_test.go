package repositories_test

import (
	"strconv"
	"testing"

	"property-management-backend/apartments/repositories"
	"property-management-backend/db/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApartmentRepo(t *testing.T) (*gorm.DB, repositories.ApartmentRepository, models.Location, models.Location) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Location{}, &models.Apartment{}))

	bristol := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	manchester := models.Location{City: "Manchester", Address: "4 Deansgate Square"}
	require.NoError(t, db.Create(&bristol).Error)
	require.NoError(t, db.Create(&manchester).Error)

	repo := repositories.NewApartmentRepository(db)
	for i, loc := range []models.Location{bristol, bristol, manchester} {
		_, err := repo.CreateApartment(&models.Apartment{
			LocationID:  loc.ID,
			Address:     "Flat " + strconv.Itoa(i+1),
			Beds:        2,
			MonthlyRent: decimal.NewFromInt(900),
		})
		require.NoError(t, err)
	}

	return db, repo, bristol, manchester
}

func TestGetFilteredApartmentsLocationFilter(t *testing.T) {
	_, repo, bristol, manchester := setupApartmentRepo(t)

	apartments, total, err := repo.GetFilteredApartments(10, 0, map[string]string{
		"location_id": strconv.FormatUint(uint64(bristol.ID), 10),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, apt := range apartments {
		assert.Equal(t, bristol.ID, apt.LocationID)
	}

	apartments, total, err = repo.GetFilteredApartments(10, 0, map[string]string{
		"location_id": strconv.FormatUint(uint64(manchester.ID), 10),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, apartments, 1)
	assert.Equal(t, manchester.ID, apartments[0].LocationID)
}
