package repositories_test

import (
	"strconv"
	"testing"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/maintenance/repositories"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func date(t *testing.T, s string) utils.DateOnly {
	d, err := utils.ParseFlexibleDate(s)
	require.NoError(t, err)
	return d
}

// setupMaintenanceRepo seeds two locations with one apartment each and one
// open request per apartment.
func setupMaintenanceRepo(t *testing.T) (*gorm.DB, repositories.MaintenanceRepository, models.Apartment, models.Apartment) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Location{}, &models.Apartment{}, &models.Tenant{}, &models.MaintenanceRequest{}))

	bristol := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	manchester := models.Location{City: "Manchester", Address: "4 Deansgate Square"}
	require.NoError(t, db.Create(&bristol).Error)
	require.NoError(t, db.Create(&manchester).Error)

	south := models.Apartment{LocationID: bristol.ID, Address: "Flat 1", Beds: 2, MonthlyRent: decimal.NewFromInt(900)}
	north := models.Apartment{LocationID: manchester.ID, Address: "Unit 3", Beds: 3, MonthlyRent: decimal.NewFromInt(1200)}
	require.NoError(t, db.Create(&south).Error)
	require.NoError(t, db.Create(&north).Error)

	tenant := models.Tenant{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", NINumber: "QQ123456C",
	}
	require.NoError(t, db.Create(&tenant).Error)

	repo := repositories.NewMaintenanceRepository(db)
	for _, apt := range []models.Apartment{south, north} {
		_, err := repo.CreateRequest(&models.MaintenanceRequest{
			ApartmentID: apt.ID, TenantID: tenant.ID,
			Description: "Dripping tap", Priority: 2,
			ReportedDate: date(t, "2026-01-10"),
		})
		require.NoError(t, err)
	}

	return db, repo, south, north
}

func TestUpdateRequestStoresCanonicalScheduledDate(t *testing.T) {
	db, repo, _, _ := setupMaintenanceRepo(t)

	require.NoError(t, repo.UpdateRequest(1, map[string]interface{}{
		"scheduled_date": "05/09/2026",
	}))

	var stored string
	require.NoError(t, db.Raw(
		"SELECT scheduled_date FROM maintenance_requests WHERE id = ?", 1).
		Scan(&stored).Error)
	assert.Equal(t, "2026-09-05", stored)

	err := repo.UpdateRequest(1, map[string]interface{}{"scheduled_date": "soon"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetFilteredRequestsLocationFilter(t *testing.T) {
	_, repo, south, _ := setupMaintenanceRepo(t)

	requests, total, err := repo.GetFilteredRequests(10, 0, map[string]string{
		"location_id": strconv.FormatUint(uint64(south.LocationID), 10),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, requests, 1)
	assert.Equal(t, south.ID, requests[0].ApartmentID)
}

func TestApartmentLocationID(t *testing.T) {
	_, repo, south, north := setupMaintenanceRepo(t)

	loc, err := repo.ApartmentLocationID(north.ID)
	require.NoError(t, err)
	assert.Equal(t, north.LocationID, loc)
	assert.NotEqual(t, south.LocationID, loc)

	_, err = repo.ApartmentLocationID(999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
