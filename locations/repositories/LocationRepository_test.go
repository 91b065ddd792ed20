package repositories_test

import (
	"testing"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/locations/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Location{}, &models.Apartment{}))
	return db
}

func TestCreateLocationRoundTrip(t *testing.T) {
	repo := repositories.NewLocationRepository(setupTestDB(t))

	created, err := repo.CreateLocation(&models.Location{
		City:    "  Bristol  ",
		Address: " 12 Harbourside Wharf ",
	})
	require.NoError(t, err)

	fetched, err := repo.GetLocationByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bristol", fetched.City)
	assert.Equal(t, "12 Harbourside Wharf", fetched.Address)
}

func TestCreateLocationDuplicateCity(t *testing.T) {
	repo := repositories.NewLocationRepository(setupTestDB(t))

	_, err := repo.CreateLocation(&models.Location{City: "Bristol", Address: "Addr 1"})
	require.NoError(t, err)

	_, err = repo.CreateLocation(&models.Location{City: "Bristol", Address: "Addr 2"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetLocationByCityMissing(t *testing.T) {
	repo := repositories.NewLocationRepository(setupTestDB(t))

	_, err := repo.GetLocationByCity("Atlantis")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteLocationMissing(t *testing.T) {
	repo := repositories.NewLocationRepository(setupTestDB(t))

	err := repo.DeleteLocation(321)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateLocation(t *testing.T) {
	repo := repositories.NewLocationRepository(setupTestDB(t))

	created, err := repo.CreateLocation(&models.Location{City: "Bristol", Address: "Old Addr"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateLocation(created.ID, map[string]interface{}{"address": "New Addr"}))

	fetched, err := repo.GetLocationByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Addr", fetched.Address)

	assert.ErrorIs(t, repo.UpdateLocation(9999, map[string]interface{}{"address": "x"}), apperrors.ErrNotFound)
}
